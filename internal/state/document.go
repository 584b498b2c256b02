package state

import (
	"strings"

	"github.com/atomicstack/gemtui/internal/gemini"
)

// Link is a "=> url label" line from a gemtext document.
type Link struct {
	URL   string
	Label string
	Line  int
}

// Document is a snapshot of the page being shown.
type Document struct {
	URL       string
	Status    gemini.StatusCode
	Meta      string
	Body      string
	Links     []Link
	Loading   bool
	RequestID string
	Redirects int
}

type DocumentStore interface {
	Snapshot() Document
	URL() string
	RequestID() string
	Loading() bool
	Redirects() int
	Begin(url, requestID string, redirect bool)
	Finish(status gemini.StatusCode, meta, body string)
	Cancel()
	Link(index int) (Link, bool)
}

type documentStore struct {
	doc Document
}

func NewDocumentStore() DocumentStore {
	return &documentStore{}
}

func (d *documentStore) Snapshot() Document {
	doc := d.doc
	doc.Links = cloneLinks(d.doc.Links)
	return doc
}

func (d *documentStore) URL() string {
	return d.doc.URL
}

func (d *documentStore) RequestID() string {
	return d.doc.RequestID
}

func (d *documentStore) Loading() bool {
	return d.doc.Loading
}

func (d *documentStore) Redirects() int {
	return d.doc.Redirects
}

// Begin marks a new request for url. The redirect counter only survives when
// the request continues a redirect chain.
func (d *documentStore) Begin(url, requestID string, redirect bool) {
	redirects := 0
	if redirect {
		redirects = d.doc.Redirects + 1
	}
	d.doc.URL = url
	d.doc.RequestID = requestID
	d.doc.Loading = true
	d.doc.Redirects = redirects
}

func (d *documentStore) Finish(status gemini.StatusCode, meta, body string) {
	d.doc.Status = status
	d.doc.Meta = meta
	d.doc.Body = body
	d.doc.Loading = false
	d.doc.RequestID = ""
	d.doc.Links = nil
	if status.IsSuccess() && strings.HasPrefix(meta, "text/gemini") {
		d.doc.Links = ParseLinks(body)
	}
}

func (d *documentStore) Cancel() {
	d.doc.Loading = false
	d.doc.RequestID = ""
}

func (d *documentStore) Link(index int) (Link, bool) {
	if index < 1 || index > len(d.doc.Links) {
		return Link{}, false
	}
	return d.doc.Links[index-1], true
}

// ParseLinks extracts link lines from gemtext, in document order. Lines
// inside preformatted blocks are text, not links.
func ParseLinks(body string) []Link {
	var links []Link
	pre := false
	for i, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "```") {
			pre = !pre
			continue
		}
		if pre || !strings.HasPrefix(line, "=>") {
			continue
		}
		fields := strings.TrimSpace(line[2:])
		if fields == "" {
			continue
		}
		url, label := fields, ""
		if j := strings.IndexAny(fields, " \t"); j >= 0 {
			url = fields[:j]
			label = strings.TrimSpace(fields[j+1:])
		}
		links = append(links, Link{URL: url, Label: label, Line: i})
	}
	return links
}

func cloneLinks(links []Link) []Link {
	if len(links) == 0 {
		return nil
	}
	dup := make([]Link, len(links))
	copy(dup, links)
	return dup
}
