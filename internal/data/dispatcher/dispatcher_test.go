package dispatcher

import (
	"testing"

	"github.com/atomicstack/gemtui/internal/fetch"
	"github.com/atomicstack/gemtui/internal/gemini"
	"github.com/atomicstack/gemtui/internal/state"
)

func begin(url string, redirects int) state.DocumentStore {
	store := state.NewDocumentStore()
	store.Begin(url, "req", false)
	for i := 0; i < redirects; i++ {
		store.Begin(url, "req", true)
	}
	return store
}

func TestSuccessUpdatesDocument(t *testing.T) {
	store := begin("file:///a.gmi", 0)
	res := New(store).Handle(fetch.Response{RequestID: "req", URL: "file:///a.gmi", Status: gemini.StatusSuccess, Meta: "text/gemini", Body: []byte("=> b\n")})
	if !res.Updated || len(res.Commands) != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	snap := store.Snapshot()
	if snap.Loading || snap.Status != gemini.StatusSuccess || len(snap.Links) != 1 {
		t.Fatalf("unexpected document %+v", snap)
	}
}

func TestStaleResponseIgnored(t *testing.T) {
	store := begin("file:///a.gmi", 0)
	res := New(store).Handle(fetch.Response{RequestID: "old", Status: gemini.StatusSuccess, Meta: "text/plain"})
	if res.Updated {
		t.Fatalf("stale response should be ignored")
	}
	if !store.Loading() {
		t.Fatalf("store should still be waiting")
	}
}

func TestRedirectPostsOpen(t *testing.T) {
	store := begin("about:old", 0)
	res := New(store).Handle(fetch.Response{RequestID: "req", URL: "about:old", Status: gemini.StatusRedirectTemporary, Meta: "about:new"})
	if len(res.Commands) != 1 || res.Commands[0] != "open redirect:1 url:about:new" {
		t.Fatalf("unexpected commands %v", res.Commands)
	}
}

func TestRelativeRedirectResolves(t *testing.T) {
	store := begin("file:///docs/a.gmi", 0)
	res := New(store).Handle(fetch.Response{RequestID: "req", URL: "file:///docs/a.gmi", Status: gemini.StatusRedirectPermanent, Meta: "../b.gmi"})
	if len(res.Commands) != 1 || res.Commands[0] != "open redirect:1 url:file:///b.gmi" {
		t.Fatalf("unexpected commands %v", res.Commands)
	}
}

func TestRedirectGuards(t *testing.T) {
	cases := []struct {
		name      string
		redirects int
		meta      string
		want      gemini.StatusCode
	}{
		{"empty target", 0, "  ", gemini.StatusInvalidRedirect},
		{"scheme change", 0, "gopher://x/", gemini.StatusSchemeChangeRedirect},
		{"too many", MaxRedirects, "/next", gemini.StatusTooManyRedirects},
	}
	for _, tc := range cases {
		store := begin("file:///a.gmi", tc.redirects)
		res := New(store).Handle(fetch.Response{RequestID: "req", URL: "file:///a.gmi", Status: gemini.StatusRedirectTemporary, Meta: tc.meta})
		if len(res.Commands) != 0 {
			t.Fatalf("%s: expected no follow-up, got %v", tc.name, res.Commands)
		}
		if got := store.Snapshot().Status; got != tc.want {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestBinaryContentRejected(t *testing.T) {
	store := begin("file:///a.png", 0)
	New(store).Handle(fetch.Response{RequestID: "req", URL: "file:///a.png", Status: gemini.StatusSuccess, Meta: "image/png", Body: []byte{0x89}})
	snap := store.Snapshot()
	if snap.Status != gemini.StatusUnsupportedMimeType || snap.Body != "" {
		t.Fatalf("unexpected document %+v", snap)
	}
}

func TestFailureStatusKept(t *testing.T) {
	store := begin("file:///missing", 0)
	New(store).Handle(fetch.Response{RequestID: "req", URL: "file:///missing", Status: gemini.StatusFailedToOpenFile, Meta: "no such file"})
	snap := store.Snapshot()
	if snap.Status != gemini.StatusFailedToOpenFile || snap.Meta != "no such file" {
		t.Fatalf("unexpected document %+v", snap)
	}
}
