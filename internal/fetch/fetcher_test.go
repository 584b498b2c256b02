package fetch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/atomicstack/gemtui/internal/gemini"
	"github.com/atomicstack/gemtui/internal/uri"
)

type postLog struct {
	mu    sync.Mutex
	lines []string
	ch    chan string
}

func newPostLog() *postLog { return &postLog{ch: make(chan string, 16)} }

func (p *postLog) post(s string) {
	p.mu.Lock()
	p.lines = append(p.lines, s)
	p.mu.Unlock()
	p.ch <- s
}

func (p *postLog) next(t *testing.T) string {
	t.Helper()
	select {
	case s := <-p.ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for post")
		return ""
	}
}

func TestFileFetchPostsFinished(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page one.gmi")
	if err := os.WriteFile(path, []byte("# hi\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	log := newPostLog()
	f := New(log.post, Options{})
	defer f.Stop()

	id := f.Start(uri.MakeFileURL(path))
	if got := log.next(t); got != "document.request.finished reqid:"+id {
		t.Fatalf("unexpected post %q", got)
	}
	resp, ok := f.Take(id)
	if !ok {
		t.Fatalf("result not parked")
	}
	if resp.Status != gemini.StatusSuccess || resp.Meta != MimeGemini || string(resp.Body) != "# hi\n" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if _, ok := f.Take(id); ok {
		t.Fatalf("take should remove the result")
	}
	if f.Current() != "" {
		t.Fatalf("no request should be in flight")
	}
}

func TestMissingFileReportsStatus(t *testing.T) {
	log := newPostLog()
	f := New(log.post, Options{})
	defer f.Stop()
	id := f.Start("file:///definitely/not/here.gmi")
	log.next(t)
	resp, _ := f.Take(id)
	if resp.Status != gemini.StatusFailedToOpenFile {
		t.Fatalf("expected failed-to-open, got %d", resp.Status)
	}
}

func TestDirectoryListing(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "b.gmi"), nil, 0o644)
	os.Mkdir(filepath.Join(dir, "a dir"), 0o755)
	os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o644)

	resp, err := FileTransport{}.Fetch(context.Background(), uri.MakeFileURL(dir))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	body := string(resp.Body)
	if !strings.Contains(body, "=> a%20dir/ a dir/\n") || !strings.Contains(body, "=> b.gmi b.gmi\n") {
		t.Fatalf("unexpected listing:\n%s", body)
	}
	if strings.Contains(body, ".hidden") {
		t.Fatalf("hidden files should be skipped")
	}
}

func TestUnsupportedScheme(t *testing.T) {
	log := newPostLog()
	f := New(log.post, Options{})
	defer f.Stop()
	id := f.Start("gemini://example.org/")
	log.next(t)
	resp, _ := f.Take(id)
	if resp.Status != gemini.StatusUnsupportedProtocol {
		t.Fatalf("expected unsupported protocol, got %d", resp.Status)
	}
}

func TestAboutPages(t *testing.T) {
	a := NewAboutTransport(map[string]string{"extra": "x"})
	resp, _ := a.Fetch(context.Background(), "about:help")
	if resp.Status != gemini.StatusSuccess || !strings.Contains(string(resp.Body), "# gemtui") {
		t.Fatalf("unexpected help page %+v", resp)
	}
	resp, _ = a.Fetch(context.Background(), "about:extra?q")
	if string(resp.Body) != "x" {
		t.Fatalf("extra page not served: %+v", resp)
	}
	resp, _ = a.Fetch(context.Background(), "about:nothing")
	if resp.Status != gemini.StatusInvalidLocalResource {
		t.Fatalf("expected invalid resource, got %d", resp.Status)
	}
}

func TestCancelStopsInFlightRequest(t *testing.T) {
	log := newPostLog()
	f := New(log.post, Options{})
	started := make(chan struct{})
	f.Register("slow", TransportFunc(func(ctx context.Context, url string) (Response, error) {
		close(started)
		<-ctx.Done()
		return Response{}, ctx.Err()
	}))
	id := f.Start("slow://x")
	<-started
	if !f.Cancel() {
		t.Fatalf("cancel should report an in-flight request")
	}
	if got := log.next(t); got != "document.request.cancelled reqid:"+id {
		t.Fatalf("unexpected post %q", got)
	}
	f.Wait()
	if _, ok := f.Take(id); ok {
		t.Fatalf("cancelled request must not park a result")
	}
	if f.Cancel() {
		t.Fatalf("second cancel should be a no-op")
	}
	log.mu.Lock()
	defer log.mu.Unlock()
	if len(log.lines) != 1 {
		t.Fatalf("expected exactly one post, got %v", log.lines)
	}
}

func TestStartSupersedesPrevious(t *testing.T) {
	log := newPostLog()
	f := New(log.post, Options{})
	defer f.Stop()
	block := make(chan struct{})
	f.Register("slow", TransportFunc(func(ctx context.Context, url string) (Response, error) {
		select {
		case <-ctx.Done():
			return Response{}, ctx.Err()
		case <-block:
		}
		return Response{Status: gemini.StatusSuccess, Meta: "text/plain"}, nil
	}))
	first := f.Start("slow://1")
	second := f.Start("slow://2")
	close(block)
	if got := log.next(t); got != "document.request.finished reqid:"+second {
		t.Fatalf("expected only the second request to finish, got %q (first %s)", got, first)
	}
	f.Wait()
	if _, ok := f.Take(first); ok {
		t.Fatalf("superseded request should not park a result")
	}
}

func TestTransportErrorBecomesStatus(t *testing.T) {
	log := newPostLog()
	f := New(log.post, Options{})
	defer f.Stop()
	f.Register("bad", TransportFunc(func(ctx context.Context, url string) (Response, error) {
		return Response{}, os.ErrDeadlineExceeded
	}))
	id := f.Start("bad://x")
	log.next(t)
	resp, _ := f.Take(id)
	if resp.Status != gemini.StatusTLSFailure || resp.Meta == "" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestThrottleWaitHonoursContext(t *testing.T) {
	th := newThrottle(time.Hour)
	if !th.wait(context.Background()) {
		t.Fatalf("first slot should be free")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if th.wait(ctx) {
		t.Fatalf("cancelled wait should not take a slot")
	}
}

func TestMimeType(t *testing.T) {
	cases := map[string]string{
		"a.gmi":    MimeGemini,
		"a.GEMINI": MimeGemini,
		"a.txt":    "text/plain",
		"README":   "text/plain",
		"x.zzzz":   "application/octet-stream",
	}
	for in, want := range cases {
		if got := MimeType(in); got != want {
			t.Fatalf("%s: want %s got %s", in, want, got)
		}
	}
}
