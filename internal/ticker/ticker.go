// Package ticker schedules callbacks to run once on the next frame.
package ticker

import (
	"bytes"
	"sort"

	"github.com/atomicstack/gemtui/internal/logging/events"
	"github.com/google/uuid"
)

// Handle identifies the owner of a scheduled callback. Registering twice
// with the same handle before the next Run keeps only the latest callback.
type Handle struct {
	id uuid.UUID
}

// NewHandle returns a fresh, unique handle.
func NewHandle() Handle {
	return Handle{id: uuid.New()}
}

func (h Handle) String() string { return h.id.String() }

// IsZero reports whether h is the zero value, which is never scheduled.
func (h Handle) IsZero() bool { return h.id == uuid.Nil }

func (h Handle) less(o Handle) bool { return bytes.Compare(h.id[:], o.id[:]) < 0 }

type entry struct {
	handle Handle
	fn     func()
}

// Scheduler holds at most one pending callback per handle, ordered by handle.
// It is not safe for concurrent use; only the main loop touches it.
type Scheduler struct {
	entries []entry
}

// New returns an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) search(h Handle) (int, bool) {
	i := sort.Search(len(s.entries), func(i int) bool { return !s.entries[i].handle.less(h) })
	return i, i < len(s.entries) && s.entries[i].handle == h
}

// Add schedules fn for the next Run. A nil fn removes any pending callback.
func (s *Scheduler) Add(h Handle, fn func()) {
	if h.IsZero() {
		return
	}
	if fn == nil {
		s.Remove(h)
		return
	}
	i, found := s.search(h)
	if found {
		s.entries[i].fn = fn
		return
	}
	s.entries = append(s.entries, entry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = entry{handle: h, fn: fn}
}

// Remove drops the pending callback for h, if any.
func (s *Scheduler) Remove(h Handle) {
	i, found := s.search(h)
	if !found {
		return
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
}

// Len returns the number of pending callbacks.
func (s *Scheduler) Len() int { return len(s.entries) }

// Pending reports whether h has a callback scheduled.
func (s *Scheduler) Pending(h Handle) bool {
	_, found := s.search(h)
	return found
}

// Run takes the pending set, clears it, and invokes each callback in handle
// order. Callbacks that register again land in the next Run. It returns true
// when anything ran.
func (s *Scheduler) Run() bool {
	if len(s.entries) == 0 {
		return false
	}
	snapshot := s.entries
	s.entries = nil
	events.Ticker.Run(len(snapshot))
	for _, e := range snapshot {
		e.fn()
	}
	return true
}
