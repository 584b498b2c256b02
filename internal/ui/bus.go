package ui

import (
	"time"

	"github.com/atomicstack/gemtui/internal/command"
	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = 80 * time.Millisecond

type busReadyMsg struct{}

type busDoneMsg struct{}

type frameMsg struct{}

// waitForBus blocks until something is posted or a refresh is requested.
func waitForBus(b *command.Bus) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.Ready():
			return busReadyMsg{}
		case <-b.Done():
			return busDoneMsg{}
		}
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// handleBusReadyMsg re-arms the wait; the drain itself happens in
// finishUpdate.
func (m *Model) handleBusReadyMsg(tea.Msg) tea.Cmd {
	if m.detached || m.busClosed {
		return nil
	}
	return waitForBus(m.engine.Bus())
}

func (m *Model) handleBusDoneMsg(tea.Msg) tea.Cmd {
	m.busClosed = true
	return nil
}

func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	m.frameScheduled = false
	if m.engine.RunTickers() {
		m.dirty = true
	}
	return nil
}
