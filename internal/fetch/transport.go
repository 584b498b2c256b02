package fetch

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atomicstack/gemtui/internal/gemini"
	"github.com/atomicstack/gemtui/internal/uri"
)

// MimeGemini is the gemtext content type.
const MimeGemini = "text/gemini"

// FileTransport serves file:// URLs from the local filesystem.
type FileTransport struct{}

func (FileTransport) Fetch(ctx context.Context, raw string) (Response, error) {
	path := uri.Parse(raw).Path()
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	info, err := os.Stat(path)
	if err != nil {
		return Response{Status: gemini.StatusFailedToOpenFile, Meta: err.Error()}, nil
	}
	if info.IsDir() {
		body, err := listDirectory(path)
		if err != nil {
			return Response{Status: gemini.StatusFailedToOpenFile, Meta: err.Error()}, nil
		}
		return Response{Status: gemini.StatusSuccess, Meta: MimeGemini, Body: body}, nil
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Response{Status: gemini.StatusFailedToOpenFile, Meta: err.Error()}, nil
	}
	return Response{Status: gemini.StatusSuccess, Meta: MimeType(path), Body: data}, nil
}

// MimeType guesses a content type from the file extension.
func MimeType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gmi", ".gemini":
		return MimeGemini
	case ".txt", ".md", ".log", "":
		return "text/plain"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

func listDirectory(dir string) ([]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", dir)
	for _, name := range names {
		fmt.Fprintf(&b, "=> %s %s\n", uri.EncodeSpaces(name), name)
	}
	return []byte(b.String()), nil
}

// AboutTransport serves built-in about: pages.
type AboutTransport struct {
	pages map[string]string
}

// NewAboutTransport returns the built-in pages merged with extra.
func NewAboutTransport(extra map[string]string) AboutTransport {
	pages := map[string]string{
		"blank": "",
		"help":  helpPage,
	}
	for k, v := range extra {
		pages[k] = v
	}
	return AboutTransport{pages: pages}
}

func (a AboutTransport) Fetch(_ context.Context, raw string) (Response, error) {
	name := raw
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	page, ok := a.pages[strings.ToLower(name)]
	if !ok {
		return Response{Status: gemini.StatusInvalidLocalResource, Meta: raw}, nil
	}
	return Response{Status: gemini.StatusSuccess, Meta: MimeGemini, Body: []byte(page)}, nil
}

const helpPage = `# gemtui

A terminal browser for Gemini documents.

## Keys

* b / alt+left: back
* f / alt+right: forward
* H: home page
* r: reload
* g / ctrl+l: edit the address
* 1-9: follow a numbered link
* ctrl+h: history
* ?: key bindings
* p: preferences
* : run a command
* q / ctrl+q: quit

=> about:blank A blank page
`
