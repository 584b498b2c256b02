package ui

import (
	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/uri"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

type addressBar struct {
	m     *Model
	input textinput.Model
	width int
}

func newAddressBar(m *Model) *addressBar {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "gemini://, file:// or a local path"
	ti.CharLimit = 1024
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.AddressPrompt != nil {
		ti.PromptStyle = *styles.AddressPrompt
	}
	return &addressBar{m: m, input: ti}
}

func (a *addressBar) name() string { return focusAddress }

func (a *addressBar) resize(width int) {
	a.width = width
	a.input.Width = width - 3
}

func (a *addressBar) editing() bool { return a.m.focus == focusAddress }

func (a *addressBar) handleCommand(cmd command.Command) bool {
	if !cmd.Is("focus.address") {
		return false
	}
	a.input.SetValue(a.m.engine.Document().URL)
	a.input.CursorEnd()
	a.input.Focus()
	a.m.setFocus(focusAddress)
	return true
}

func (a *addressBar) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !a.editing() {
		return false, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		a.close()
		return true, nil
	case tea.KeyEnter:
		target := uri.FromInput(a.input.Value())
		a.close()
		if target != "" {
			a.m.engine.Post(command.Open(target, false, false))
		}
		return true, nil
	}
	if msg.String() == "ctrl+u" {
		a.input.SetValue("")
		return true, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return true, cmd
}

func (a *addressBar) close() {
	a.input.Blur()
	a.m.setFocus(focusDocument)
}

func (a *addressBar) sync() {}

func (a *addressBar) view() string {
	if a.editing() {
		return styles.AddressFocused.Render(ansi.Truncate(a.input.View(), a.width, "…"))
	}
	doc := a.m.engine.Document()
	line := "› " + doc.URL
	if spin := a.m.engine.Spinner(); spin != "" {
		line = styles.Spinner.Render(spin) + " " + doc.URL
	}
	return styles.Address.Render(ansi.Truncate(line, a.width, "…"))
}
