package ui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/gemini"
	"github.com/atomicstack/gemtui/internal/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Verbs lists the commands accepted at the ":" prompt.
var Verbs = []string{
	"open",
	"navigate.back",
	"navigate.forward",
	"navigate.home",
	"navigate.reload",
	"document.stop",
	"document.link",
	"history.clear",
	"history.toggle",
	"bindings.toggle",
	"bindings.set",
	"preferences",
	"uiscale",
	"quit",
}

type promptMode int

const (
	promptCommand promptMode = iota
	promptInput
)

type promptBar struct {
	m      *Model
	input  textinput.Model
	mode   promptMode
	target string
	width  int
}

func newPromptBar(m *Model) *promptBar {
	ti := textinput.New()
	ti.CharLimit = 1024
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	return &promptBar{m: m, input: ti}
}

func (p *promptBar) name() string { return focusPrompt }

func (p *promptBar) resize(width int) {
	p.width = width
	p.input.Width = width - 3
}

func (p *promptBar) active() bool { return p.m.focus == focusPrompt }

func (p *promptBar) handleCommand(cmd command.Command) bool {
	if !cmd.Is("prompt.command") {
		return false
	}
	p.open(promptCommand, ":", "")
	return true
}

// askInput opens the prompt for a status 1x response; the answer is sent
// back as the query of the requesting URL.
func (p *promptBar) askInput(doc state.Document) {
	p.target = doc.URL
	label := strings.TrimSpace(doc.Meta)
	if label == "" {
		label = "Input"
	}
	p.open(promptInput, label+": ", "")
	if doc.Status == gemini.StatusSensitiveInput {
		p.input.EchoMode = textinput.EchoPassword
	}
}

func (p *promptBar) open(mode promptMode, prompt, value string) {
	p.mode = mode
	p.input.Prompt = prompt
	p.input.EchoMode = textinput.EchoNormal
	p.input.SetValue(value)
	p.input.CursorEnd()
	p.input.Focus()
	p.m.setFocus(focusPrompt)
}

func (p *promptBar) close() {
	p.input.Blur()
	p.input.SetValue("")
	p.target = ""
	p.m.setFocus(focusDocument)
}

func (p *promptBar) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !p.active() {
		return false, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		p.close()
		return true, nil
	case tea.KeyEnter:
		p.submit(strings.TrimSpace(p.input.Value()))
		return true, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return true, cmd
}

func (p *promptBar) submit(text string) {
	mode, target := p.mode, p.target
	p.close()
	if text == "" {
		return
	}
	if mode == promptInput {
		p.m.engine.Post(command.Open(withQuery(target, text), false, false))
		return
	}
	verb := command.Parse(text).Verb()
	for _, known := range Verbs {
		if verb == known {
			p.m.engine.Post(text)
			return
		}
	}
	if suggestion := Suggest(verb); suggestion != "" {
		p.m.setMessage(fmt.Sprintf("unknown command %q, did you mean %q?", verb, suggestion))
		return
	}
	p.m.setMessage(fmt.Sprintf("unknown command %q", verb))
}

// Suggest returns the known verb closest to verb, or "" when nothing is
// within a third of its length.
func Suggest(verb string) string {
	best, bestDist := "", -1
	for _, known := range Verbs {
		d := levenshtein.ComputeDistance(verb, known)
		if bestDist < 0 || d < bestDist {
			best, bestDist = known, d
		}
	}
	limit := len(verb)/3 + 1
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}

// withQuery replaces the query of raw with the escaped answer.
func withQuery(raw, answer string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	return raw + "?" + strings.ReplaceAll(url.QueryEscape(answer), "+", "%20")
}

func (p *promptBar) sync() {}

func (p *promptBar) view() string {
	return p.input.View()
}
