package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/fetch"
	"github.com/atomicstack/gemtui/internal/gemini"
	"github.com/atomicstack/gemtui/internal/logging/events"
	"github.com/atomicstack/gemtui/internal/state"
	"github.com/atomicstack/gemtui/internal/uri"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// textColumns is the document column width at UI scale 1.
const textColumns = 72

type documentView struct {
	m        *Model
	viewport viewport.Model
	rendered string
}

func newDocumentView(m *Model) *documentView {
	return &documentView{m: m, viewport: viewport.New(defaultWidth, defaultHeight-3)}
}

func (d *documentView) name() string { return focusDocument }

func (d *documentView) resize(width, height int) {
	d.viewport.Width = width
	d.viewport.Height = height
	d.rendered = ""
}

func (d *documentView) handleCommand(cmd command.Command) bool {
	switch cmd.Verb() {
	case "document.link":
		d.followLink(cmd.ArgInt("index"))
		return true
	case "document.changed":
		d.viewport.GotoTop()
		doc := d.m.engine.Document()
		if doc.Status.IsInput() {
			d.m.prompt.askInput(doc)
		}
		// The application still sees document.changed.
		return false
	}
	return false
}

func (d *documentView) followLink(index int) {
	doc := d.m.engine.Document()
	if index < 1 || index > len(doc.Links) {
		d.m.setMessage(fmt.Sprintf("no link %d on this page", index))
		return
	}
	target := uri.Resolve(doc.URL, doc.Links[index-1].URL)
	events.Document.Link(index, target)
	d.m.engine.Post(command.Open(target, false, false))
}

func (d *documentView) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		d.viewport.LineUp(1)
	case "down", "j":
		d.viewport.LineDown(1)
	case "pgup", "ctrl+b":
		d.viewport.ViewUp()
	case "pgdown", "ctrl+f", " ":
		d.viewport.ViewDown()
	case "home":
		d.viewport.GotoTop()
	case "end":
		d.viewport.GotoBottom()
	default:
		return false, nil
	}
	return true, nil
}

// sync re-renders only when the document or the layout changed.
func (d *documentView) sync() {
	doc := d.m.engine.Document()
	width := d.columnWidth()
	key := fmt.Sprintf("%s|%d|%s|%d|%d|%d", doc.URL, doc.Status, doc.Meta, len(doc.Body), len(doc.Links), width)
	if doc.Loading || key == d.rendered {
		return
	}
	d.rendered = key
	d.viewport.SetContent(renderDocument(doc, width))
}

// columnWidth scales the reading column by the UI scale, capped by the
// terminal.
func (d *documentView) columnWidth() int {
	w := int(float64(textColumns) * d.m.engine.Prefs().UIScale)
	if w > d.viewport.Width {
		w = d.viewport.Width
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (d *documentView) view() string {
	return d.viewport.View()
}

func renderDocument(doc state.Document, width int) string {
	switch {
	case doc.URL == "":
		return ""
	case doc.Status.IsSuccess():
		if strings.HasPrefix(doc.Meta, fetch.MimeGemini) {
			return renderGemtext(doc.Body, width)
		}
		return styles.Text.Render(wordwrap.String(doc.Body, width))
	case doc.Status.IsInput():
		return styles.Text.Render(wordwrap.String("Input requested: "+doc.Meta, width))
	}
	return renderError(doc, width)
}

func renderError(doc state.Document, width int) string {
	info := gemini.ErrorInfo(doc.Status)
	var b strings.Builder
	b.WriteString(styles.ErrorIcon.Render(string(info.Icon)))
	b.WriteString(" ")
	b.WriteString(styles.ErrorTitle.Render(info.Title))
	b.WriteString("\n\n")
	b.WriteString(styles.ErrorBody.Render(wordwrap.String(info.Message, width)))
	if doc.Meta != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ErrorBody.Render(wordwrap.String(doc.Meta, width)))
	}
	return b.String()
}

// renderGemtext styles each gemtext line type. Link lines are numbered in
// document order so they can be followed with document.link.
func renderGemtext(body string, width int) string {
	var out []string
	link := 0
	pre := false
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "```") {
			pre = !pre
			continue
		}
		if pre {
			out = append(out, styles.Preformatted.Render(line))
			continue
		}
		switch {
		case strings.HasPrefix(line, "=>"):
			parsed := state.ParseLinks(line)
			if len(parsed) == 0 {
				out = append(out, styles.Text.Render(line))
				continue
			}
			link++
			label := parsed[0].Label
			if label == "" {
				label = parsed[0].URL
			}
			prefix := fmt.Sprintf("[%d] ", link)
			wrapped := wordwrap.String(label, width-len(prefix))
			out = append(out, styles.LinkIndex.Render(prefix)+styles.Link.Render(wrapped))
		case strings.HasPrefix(line, "###"):
			out = append(out, styles.Heading3.Render(strings.TrimSpace(line[3:])))
		case strings.HasPrefix(line, "##"):
			out = append(out, styles.Heading2.Render(strings.TrimSpace(line[2:])))
		case strings.HasPrefix(line, "#"):
			out = append(out, styles.Heading1.Render(strings.TrimSpace(line[1:])))
		case strings.HasPrefix(line, "* "):
			out = append(out, styles.ListItem.Render("• "+wordwrap.String(line[2:], width-2)))
		case strings.HasPrefix(line, ">"):
			out = append(out, styles.Quote.Render("│ "+wordwrap.String(strings.TrimSpace(line[1:]), width-2)))
		default:
			out = append(out, styles.Text.Render(wordwrap.String(line, width)))
		}
	}
	return strings.Join(out, "\n")
}
