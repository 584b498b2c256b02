// Package fetch runs document requests off the main loop. Results are parked
// by request id and announced by posting a command, so the main loop picks
// them up on its own schedule.
package fetch

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/atomicstack/gemtui/internal/gemini"
	"github.com/atomicstack/gemtui/internal/logging/events"
	"github.com/atomicstack/gemtui/internal/uri"
	"github.com/google/uuid"
)

// Response is the outcome of one request. For success Meta holds the MIME
// type, for redirects the target, and for failures a detail message.
type Response struct {
	RequestID string
	URL       string
	Status    gemini.StatusCode
	Meta      string
	Body      []byte
}

// Transport retrieves a single URL.
type Transport interface {
	Fetch(ctx context.Context, url string) (Response, error)
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, url string) (Response, error)

func (f TransportFunc) Fetch(ctx context.Context, url string) (Response, error) { return f(ctx, url) }

// Options tune a Fetcher.
type Options struct {
	// MinInterval is the minimum spacing between request starts.
	MinInterval time.Duration
}

// Fetcher owns at most one in-flight request. Starting a new request cancels
// the previous one.
type Fetcher struct {
	post       func(string)
	transports map[string]Transport
	throttle   *throttle

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	mu      sync.Mutex
	current string
	cancel  context.CancelFunc
	results map[string]Response
}

// New returns a Fetcher with the file and about transports registered. post
// is called from request goroutines and must be safe for concurrent use.
func New(post func(string), opts Options) *Fetcher {
	ctx, stop := context.WithCancel(context.Background())
	f := &Fetcher{
		post:       post,
		transports: make(map[string]Transport),
		throttle:   newThrottle(opts.MinInterval),
		ctx:        ctx,
		stop:       stop,
		results:    make(map[string]Response),
	}
	f.Register("file", FileTransport{})
	f.Register("about", NewAboutTransport(nil))
	return f
}

// Register installs t for scheme, replacing any previous transport.
func (f *Fetcher) Register(scheme string, t Transport) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transports[strings.ToLower(scheme)] = t
}

func (f *Fetcher) transport(scheme string) Transport {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transports[strings.ToLower(scheme)]
}

// Start launches a request for url and returns its id.
func (f *Fetcher) Start(url string) string {
	id := uuid.NewString()
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(f.ctx)
	f.current = id
	f.cancel = cancel
	f.mu.Unlock()

	events.Document.Request(id, url)
	f.wg.Add(1)
	go f.run(ctx, id, url)
	return id
}

func (f *Fetcher) run(ctx context.Context, id, url string) {
	defer f.wg.Done()
	if !f.throttle.wait(ctx) {
		return
	}
	resp := f.fetch(ctx, url)
	if ctx.Err() != nil {
		return
	}
	resp.RequestID = id
	resp.URL = url

	f.mu.Lock()
	if f.current == id {
		f.current = ""
		f.cancel = nil
	}
	f.results[id] = resp
	f.mu.Unlock()

	events.Document.Finished(id, url, int(resp.Status))
	f.post(fmt.Sprintf("document.request.finished reqid:%s", id))
}

func (f *Fetcher) fetch(ctx context.Context, url string) Response {
	t := f.transport(uri.Scheme(url))
	if t == nil {
		return Response{Status: gemini.StatusUnsupportedProtocol, Meta: uri.Scheme(url)}
	}
	resp, err := t.Fetch(ctx, url)
	if err != nil {
		return Response{Status: gemini.StatusTLSFailure, Meta: err.Error()}
	}
	return resp
}

// Take removes and returns the parked result for id.
func (f *Fetcher) Take(id string) (Response, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	resp, ok := f.results[id]
	if ok {
		delete(f.results, id)
	}
	return resp, ok
}

// Current returns the id of the in-flight request, or "".
func (f *Fetcher) Current() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Cancel aborts the in-flight request and posts document.request.cancelled.
// It reports whether anything was running.
func (f *Fetcher) Cancel() bool {
	f.mu.Lock()
	if f.cancel == nil {
		f.mu.Unlock()
		return false
	}
	f.cancel()
	id := f.current
	f.cancel = nil
	f.current = ""
	f.mu.Unlock()

	events.Document.Cancelled(id)
	f.post(fmt.Sprintf("document.request.cancelled reqid:%s", id))
	return true
}

// Stop cancels every request. Use Wait to block until goroutines exit.
func (f *Fetcher) Stop() {
	f.stop()
}

// Wait blocks until all request goroutines have returned.
func (f *Fetcher) Wait() {
	f.wg.Wait()
}
