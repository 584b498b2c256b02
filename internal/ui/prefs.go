package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/prefs"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// prefsPanel edits the UI scale and the retain-window flag. Nothing is
// applied until prefs.dismiss.
type prefsPanel struct {
	m      *Model
	scale  textinput.Model
	retain bool
	field  int
	shown  bool
}

func newPrefsPanel(m *Model) *prefsPanel {
	ti := textinput.New()
	ti.Prompt = "UI scale: "
	ti.CharLimit = 8
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &prefsPanel{m: m, scale: ti}
}

func (p *prefsPanel) name() string { return focusPrefs }

func (p *prefsPanel) handleCommand(cmd command.Command) bool {
	switch cmd.Verb() {
	case "preferences":
		p.open()
		return true
	case "prefs.dismiss":
		if !p.shown {
			return false
		}
		p.apply()
		p.close()
		return true
	}
	return false
}

func (p *prefsPanel) open() {
	current := p.m.engine.Prefs()
	p.scale.SetValue(strconv.FormatFloat(current.UIScale, 'f', -1, 64))
	p.scale.CursorEnd()
	p.scale.Focus()
	p.retain = current.RetainWindowSize
	p.field = 0
	p.shown = true
	p.m.setFocus(focusPrefs)
}

func (p *prefsPanel) close() {
	p.shown = false
	p.scale.Blur()
	if p.m.focus == focusPrefs {
		p.m.setFocus(focusDocument)
	}
}

// apply posts the edited values; an unparsable scale keeps the old one.
func (p *prefsPanel) apply() {
	if v, err := strconv.ParseFloat(strings.TrimSpace(p.scale.Value()), 64); err == nil {
		p.m.engine.Postf("uiscale arg:%f", prefs.ClampScale(v))
	} else {
		p.m.setMessage(fmt.Sprintf("invalid UI scale %q", p.scale.Value()))
	}
	retain := 0
	if p.retain {
		retain = 1
	}
	p.m.engine.Postf("prefs.retainwindow arg:%d", retain)
}

func (p *prefsPanel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !p.shown {
		return false, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		p.close()
		return true, nil
	case tea.KeyEnter:
		p.m.engine.Post("prefs.dismiss")
		return true, nil
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		p.field = 1 - p.field
		if p.field == 0 {
			p.scale.Focus()
		} else {
			p.scale.Blur()
		}
		return true, nil
	}
	if p.field == 1 {
		if msg.Type == tea.KeySpace || msg.String() == "x" {
			p.retain = !p.retain
		}
		return true, nil
	}
	var cmd tea.Cmd
	p.scale, cmd = p.scale.Update(msg)
	return true, cmd
}

func (p *prefsPanel) sync() {}

func (p *prefsPanel) view(width, height int) string {
	check := "[ ]"
	if p.retain {
		check = "[x]"
	}
	retain := check + " Retain window size"
	if p.field == 1 {
		retain = styles.SelectedItem.Render(retain)
	} else {
		retain = styles.Item.Render(retain)
	}
	lines := []string{
		styles.PanelTitle.Render("Preferences"),
		"",
		p.scale.View(),
		retain,
		"",
		styles.Help.Render("tab switch field · space toggle · enter apply · esc cancel"),
	}
	return strings.Join(lines, "\n")
}
