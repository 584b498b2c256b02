package command

import (
	"fmt"
	"sync"

	"github.com/atomicstack/gemtui/internal/logging/events"
)

// Bus is a FIFO of pending command lines. Post may be called from any
// goroutine; Next must only be called by the single consumer that owns the
// main loop.
type Bus struct {
	mu     sync.Mutex
	queue  []string
	ready  chan struct{}
	done   chan struct{}
	closed bool
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Post appends text to the queue and wakes the consumer.
func (b *Bus) Post(text string) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, text)
	b.mu.Unlock()
	events.Command.Post(text)
	b.Wake()
}

// Postf formats and posts a command.
func (b *Bus) Postf(format string, args ...interface{}) {
	b.Post(fmt.Sprintf(format, args...))
}

// Next pops the oldest queued command.
func (b *Bus) Next() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.queue) == 0 {
		return "", false
	}
	text := b.queue[0]
	b.queue[0] = ""
	b.queue = b.queue[1:]
	if len(b.queue) == 0 {
		b.queue = nil
	}
	return text, true
}

// Len returns the number of queued commands.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Ready is signalled whenever something is posted or Wake is called. At most
// one signal is buffered, so a consumer should drain the queue fully after
// each receive.
func (b *Bus) Ready() <-chan struct{} { return b.ready }

// Done is closed by Close.
func (b *Bus) Done() <-chan struct{} { return b.done }

// Wake signals Ready without posting a command.
func (b *Bus) Wake() {
	select {
	case b.ready <- struct{}{}:
	default:
	}
}

// Close discards further posts and releases anyone blocked on Done.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
}
