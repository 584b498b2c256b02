// Package history keeps the browser's bounded back/forward list.
//
// Records are stored oldest first. The cursor counts back from the newest
// record: position 0 is the most recent page, position Len()-1 the oldest.
package history

import (
	"time"
)

// MaxHistory bounds the number of records kept.
const MaxHistory = 100

// Record is a visited URL and the time it was first opened.
type Record struct {
	When time.Time
	URL  string
}

// History is owned by the main loop and is not safe for concurrent use.
type History struct {
	records []Record
	pos     int
	now     func() time.Time
}

// New returns an empty history.
func New() *History {
	return &History{now: time.Now}
}

// Open records a navigation to url. With suppress set nothing changes, which
// is how back/forward re-open pages. A redirect rewrites the URL of the
// current record in place. Otherwise any forward branch is dropped, the cursor
// returns to the newest record, and url is appended unless it is already on
// top.
func (h *History) Open(url string, suppress, redirect bool) {
	if suppress {
		return
	}
	if redirect {
		if i := h.index(); i >= 0 {
			h.records[i].URL = url
		}
		return
	}
	if h.pos > 0 {
		keep := len(h.records) - h.pos
		for i := keep; i < len(h.records); i++ {
			h.records[i] = Record{}
		}
		h.records = h.records[:keep]
		h.pos = 0
	}
	if n := len(h.records); n > 0 && h.records[n-1].URL == url {
		return
	}
	h.records = append(h.records, Record{When: h.now().Truncate(time.Second), URL: url})
	if len(h.records) > MaxHistory {
		h.records = append(h.records[:0], h.records[len(h.records)-MaxHistory:]...)
	}
}

// Back moves the cursor one record older and returns the URL to re-open.
func (h *History) Back() (string, bool) {
	if h.pos >= len(h.records)-1 {
		return "", false
	}
	h.pos++
	return h.records[h.index()].URL, true
}

// Forward moves the cursor one record newer and returns the URL to re-open.
func (h *History) Forward() (string, bool) {
	if h.pos <= 0 {
		return "", false
	}
	h.pos--
	return h.records[h.index()].URL, true
}

func (h *History) index() int {
	if len(h.records) == 0 {
		return -1
	}
	return len(h.records) - 1 - h.pos
}

// Current returns the record under the cursor.
func (h *History) Current() (Record, bool) {
	i := h.index()
	if i < 0 {
		return Record{}, false
	}
	return h.records[i], true
}

// Len returns the number of records.
func (h *History) Len() int { return len(h.records) }

// Pos returns the cursor, counted back from the newest record.
func (h *History) Pos() int { return h.pos }

// Records returns a copy of all records, oldest first.
func (h *History) Records() []Record {
	if len(h.records) == 0 {
		return nil
	}
	dup := make([]Record, len(h.records))
	copy(dup, h.records)
	return dup
}

// Clear drops every record.
func (h *History) Clear() {
	h.records = nil
	h.pos = 0
}

// replace swaps in a decoded record list, keeping the newest MaxHistory.
func (h *History) replace(records []Record) {
	if len(records) > MaxHistory {
		records = records[len(records)-MaxHistory:]
	}
	h.records = append([]Record(nil), records...)
	h.pos = 0
}
