package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests. The
// model is detached: it never blocks on the bus or schedules real frames,
// so Settle pumps both by hand.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	model.detached = true
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Key sends a key press. Named keys such as "enter" and "esc" map to their
// key types; anything else is typed as runes.
func (h *Harness) Key(k string) {
	if t, ok := namedKeys[k]; ok {
		h.Send(tea.KeyMsg{Type: t})
		return
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

// Type sends each rune of text as its own key press.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Settle drains the bus and runs frames until the document stops loading
// and no command is queued. It reports false on timeout.
func (h *Harness) Settle(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		h.Send(frameMsg{})
		doc := h.model.engine.Document()
		if !doc.Loading && h.model.engine.Bus().Len() == 0 {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				h.processCmd(c)
			}
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"backspace": tea.KeyBackspace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"space":     tea.KeySpace,
	"ctrl+l":    tea.KeyCtrlL,
	"ctrl+h":    tea.KeyCtrlH,
	"ctrl+q":    tea.KeyCtrlQ,
	"ctrl+u":    tea.KeyCtrlU,
	"ctrl+x":    tea.KeyCtrlX,
}
