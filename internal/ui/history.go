package ui

import (
	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/logging/events"
	uistate "github.com/atomicstack/gemtui/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const historyTimeLayout = "2006-01-02 15:04"

type historyPanel struct {
	m     *Model
	level *uistate.Level
	shown bool
}

func newHistoryPanel(m *Model) *historyPanel {
	p := &historyPanel{m: m}
	p.level = uistate.NewLevel(focusHistory, "History", nil)
	p.level.Source = p.search
	return p
}

func (p *historyPanel) name() string { return focusHistory }

// search lists distinct URLs, newest first, narrowed by query.
func (p *historyPanel) search(query string) []uistate.Item {
	records := p.m.engine.History().Search(query)
	items := make([]uistate.Item, len(records))
	for i, r := range records {
		items[i] = uistate.Item{ID: r.URL, Label: r.When.Format(historyTimeLayout) + "  " + r.URL}
	}
	return items
}

func (p *historyPanel) handleCommand(cmd command.Command) bool {
	switch cmd.Verb() {
	case "history.toggle":
		if p.shown {
			p.close()
		} else {
			p.open()
		}
		return true
	case "list.clicked":
		if !p.shown || p.m.focus != focusHistory {
			return false
		}
		p.level.SetCursor(cmd.Arg())
		p.activate()
		return true
	}
	return false
}

func (p *historyPanel) open() {
	p.shown = true
	p.level.SetFilter("", 0)
	p.level.Refresh()
	p.level.MoveCursorHome()
	p.m.setFocus(focusHistory)
}

func (p *historyPanel) close() {
	p.shown = false
	if p.m.focus == focusHistory {
		p.m.setFocus(focusDocument)
	}
}

func (p *historyPanel) activate() {
	item, ok := p.level.Selected()
	if !ok {
		return
	}
	p.close()
	p.m.engine.Post(command.Open(item.ID, false, false))
}

func (p *historyPanel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !p.shown {
		return false, nil
	}
	height := p.m.bodyHeight() - 2
	switch msg.String() {
	case "esc":
		if p.level.ClearFilter() {
			events.Filter.Cleared(p.level.ID)
			return true, nil
		}
		p.close()
		return true, nil
	case "enter":
		p.activate()
		return true, nil
	case "up":
		p.level.MoveCursorUp()
	case "down":
		p.level.MoveCursorDown()
	case "pgup":
		p.level.MoveCursorPageUp(height)
	case "pgdown":
		p.level.MoveCursorPageDown(height)
	case "home":
		p.level.MoveCursorHome()
	case "end":
		p.level.MoveCursorEnd()
	case "ctrl+x":
		p.m.engine.Post("history.clear")
		return true, nil
	case "backspace":
		if p.level.DeleteFilterRuneBackward() {
			events.Filter.Backspace(p.level.ID, p.level.Filter)
		}
		return true, nil
	case "ctrl+w":
		if p.level.DeleteFilterWordBackward() {
			events.Filter.Backspace(p.level.ID, p.level.Filter)
		}
		return true, nil
	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			p.level.InsertFilterText(string(msg.Runes))
			events.Filter.Append(p.level.ID, p.level.Filter)
			return true, nil
		}
		if msg.Type == tea.KeySpace {
			p.level.InsertFilterText(" ")
			return true, nil
		}
		return false, nil
	}
	events.UI.ListCursor(p.level.ID, p.level.Cursor)
	return true, nil
}

func (p *historyPanel) sync() {
	if p.shown {
		p.level.Refresh()
	}
}

func (p *historyPanel) view(width, height int) string {
	return renderList(p.level, width, height, "no history yet")
}
