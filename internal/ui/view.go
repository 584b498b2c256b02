package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gemtui/internal/gemini"
	uistate "github.com/atomicstack/gemtui/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// View implements tea.Model.
func (m *Model) View() string {
	bodyHeight := m.bodyHeight()
	var body string
	switch {
	case m.prefs.shown:
		body = m.prefs.view(m.width, bodyHeight)
	case m.bindings.shown:
		body = m.bindings.view(m.width, bodyHeight)
	case m.history.shown:
		body = m.history.view(m.width, bodyHeight)
	default:
		body = m.document.view()
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	bottom := m.statusLine()
	if m.prompt.active() {
		bottom = ansi.Truncate(m.prompt.view(), m.width, "…")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.address.view(),
		body,
		bottom,
		m.helpLine(),
	)
}

func (m *Model) statusLine() string {
	if m.message != "" {
		return styles.Message.Render(ansi.Truncate(m.message, m.width, "…"))
	}
	doc := m.engine.Document()
	var text string
	style := styles.Status
	switch {
	case doc.Loading:
		text = "Loading " + doc.URL
	case doc.URL == "":
		text = "Ready"
	case doc.Status.IsSuccess():
		text = fmt.Sprintf("%d %s", doc.Status, doc.Meta)
		if n := len(doc.Links); n > 0 {
			text += fmt.Sprintf(" · %d links", n)
		}
	default:
		info := gemini.ErrorInfo(doc.Status)
		text = fmt.Sprintf("%c %s", info.Icon, info.Title)
		style = styles.StatusError
	}
	return style.Render(ansi.Truncate(text, m.width, "…"))
}

func (m *Model) helpLine() string {
	return styles.Help.Render(m.help.ShortHelpView(m.engine.Bindings().HelpBindings()))
}

// renderList draws a filterable list: a title row with the filter, then the
// rows that fit, the cursor row highlighted.
func renderList(l *uistate.Level, width, height int, empty string) string {
	title := styles.PanelTitle.Render(l.Title)
	if l.Filter != "" {
		title += "  " + styles.FilterPrompt.Render("/") + styles.Filter.Render(l.Filter)
	}
	lines := []string{title}
	rows := height - 1
	if len(l.Items) == 0 {
		lines = append(lines, styles.Item.Render(empty))
		return strings.Join(lines, "\n")
	}
	visible := l.Visible(rows)
	for i, item := range visible {
		label := truncate.StringWithTail(item.Label, uint(max(width-2, 1)), "…")
		if l.ViewportOffset+i == l.Cursor {
			lines = append(lines, styles.SelectedItem.Render("▌ "+label))
			continue
		}
		lines = append(lines, styles.Item.Render("  "+label))
	}
	return strings.Join(lines, "\n")
}
