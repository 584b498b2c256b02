package dispatcher

import (
	"strings"

	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/fetch"
	"github.com/atomicstack/gemtui/internal/gemini"
	"github.com/atomicstack/gemtui/internal/logging/events"
	"github.com/atomicstack/gemtui/internal/state"
	"github.com/atomicstack/gemtui/internal/uri"
)

// MaxRedirects is how many redirects in a row are followed.
const MaxRedirects = 5

type Result struct {
	Updated  bool
	Commands []string
}

type Dispatcher struct {
	document state.DocumentStore
}

func New(d state.DocumentStore) *Dispatcher {
	return &Dispatcher{document: d}
}

// Handle applies a finished request to the document store. Responses for
// requests other than the one the store is waiting on are dropped.
func (d *Dispatcher) Handle(resp fetch.Response) Result {
	var res Result
	if resp.RequestID == "" || resp.RequestID != d.document.RequestID() {
		events.Document.Stale(resp.RequestID)
		return res
	}
	res.Updated = true
	switch {
	case resp.Status.IsRedirect():
		d.redirect(resp, &res)
	case resp.Status.IsSuccess() && !isText(resp.Meta):
		d.document.Finish(gemini.StatusUnsupportedMimeType, resp.Meta, "")
	default:
		d.document.Finish(resp.Status, resp.Meta, string(resp.Body))
	}
	return res
}

func (d *Dispatcher) redirect(resp fetch.Response, res *Result) {
	meta := strings.TrimSpace(resp.Meta)
	if meta == "" {
		d.document.Finish(gemini.StatusInvalidRedirect, "", "")
		return
	}
	target := uri.Resolve(resp.URL, meta)
	if d.document.Redirects() >= MaxRedirects {
		d.document.Finish(gemini.StatusTooManyRedirects, target, "")
		return
	}
	if !strings.EqualFold(uri.Scheme(target), uri.Scheme(resp.URL)) {
		d.document.Finish(gemini.StatusSchemeChangeRedirect, target, "")
		return
	}
	events.Document.Redirect(resp.URL, target, d.document.Redirects()+1)
	res.Commands = append(res.Commands, command.Open(target, false, true))
}

func isText(mime string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mime)), "text/")
}
