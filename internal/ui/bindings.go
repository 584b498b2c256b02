package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/format/table"
	"github.com/atomicstack/gemtui/internal/logging/events"
	uistate "github.com/atomicstack/gemtui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// bindingsPanel lists the labelled key bindings. Clicking a row arms
// capture mode; the next key press becomes that binding's key.
type bindingsPanel struct {
	m         *Model
	level     *uistate.Level
	shown     bool
	capturing string
}

func newBindingsPanel(m *Model) *bindingsPanel {
	return &bindingsPanel{m: m, level: uistate.NewLevel(focusBindings, "Key bindings", nil)}
}

func (p *bindingsPanel) name() string { return focusBindings }

// items lays the label and key columns out with the table formatter so
// the keys line up.
func (p *bindingsPanel) items() []uistate.Item {
	list := p.m.engine.Bindings().List()
	rows := make([][]string, len(list))
	for i, b := range list {
		rows[i] = []string{b.Label, strings.Join(b.Keys, ", ")}
	}
	lines := table.Format(rows, nil)
	items := make([]uistate.Item, len(list))
	for i, b := range list {
		items[i] = uistate.Item{ID: b.ID, Label: lines[i]}
	}
	return items
}

func (p *bindingsPanel) handleCommand(cmd command.Command) bool {
	switch cmd.Verb() {
	case "bindings.toggle":
		if p.shown {
			p.close()
		} else {
			p.open()
		}
		return true
	case "list.clicked":
		if !p.shown || p.m.focus != focusBindings {
			return false
		}
		p.level.SetCursor(cmd.Arg())
		if item, ok := p.level.Selected(); ok {
			p.capturing = item.ID
			events.UI.ListCursor(p.level.ID, p.level.Cursor)
			p.m.setMessage(fmt.Sprintf("press a key for %q, esc to cancel", item.ID))
		}
		return true
	case "bindings.changed":
		p.level.UpdateItems(p.items())
		return false
	}
	return false
}

func (p *bindingsPanel) open() {
	p.shown = true
	p.capturing = ""
	p.level.UpdateItems(p.items())
	p.level.MoveCursorHome()
	p.m.setFocus(focusBindings)
}

func (p *bindingsPanel) close() {
	p.shown = false
	p.capturing = ""
	if p.m.focus == focusBindings {
		p.m.setFocus(focusDocument)
	}
}

func (p *bindingsPanel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !p.shown {
		return false, nil
	}
	if p.capturing != "" {
		id := p.capturing
		p.capturing = ""
		p.m.setMessage("")
		if msg.Type == tea.KeyEsc {
			return true, nil
		}
		p.m.engine.Postf("bindings.set id:%s key:%s", id, command.Quote(msg.String()))
		return true, nil
	}
	switch msg.String() {
	case "esc", "?":
		p.close()
	case "enter":
		p.m.engine.Postf("list.clicked arg:%d", p.level.Cursor)
	case "up", "k":
		p.level.MoveCursorUp()
	case "down", "j":
		p.level.MoveCursorDown()
	case "home":
		p.level.MoveCursorHome()
	case "end":
		p.level.MoveCursorEnd()
	default:
		return false, nil
	}
	return true, nil
}

func (p *bindingsPanel) sync() {}

func (p *bindingsPanel) view(width, height int) string {
	return renderList(p.level, width, height, "no bindings")
}
