package ui

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/atomicstack/gemtui/internal/command"
	"github.com/atomicstack/gemtui/internal/logging/events"
	"github.com/atomicstack/gemtui/internal/theme"
	"github.com/atomicstack/gemtui/internal/uri"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

const (
	focusDocument = "document"
	focusAddress  = "address"
	focusPrompt   = "prompt"
	focusHistory  = "history"
	focusBindings = "bindings"
	focusPrefs    = "prefs"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// widget is one element of the dispatch chain.
type widget interface {
	name() string
	handleCommand(cmd command.Command) bool
	handleKey(msg tea.KeyMsg) (bool, tea.Cmd)
	sync()
}

// Model implements the Bubble Tea model for the browser window.
type Model struct {
	engine      Engine
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	focus    string
	widgets  []widget
	address  *addressBar
	document *documentView
	prompt   *promptBar
	history  *historyPanel
	bindings *bindingsPanel
	prefs    *prefsPanel
	help     help.Model
	message  string

	handlers map[reflect.Type]msgHandler

	detached       bool
	busClosed      bool
	frameScheduled bool
	// dirty forces a widget sync after a layout change.
	dirty bool
}

// NewModel builds the widget tree around e. A zero width or height follows
// the terminal size.
func NewModel(e Engine, width, height int) *Model {
	m := &Model{
		engine: e,
		width:  defaultWidth,
		height: defaultHeight,
		focus:  focusDocument,
		help:   help.New(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.address = newAddressBar(m)
	m.document = newDocumentView(m)
	m.prompt = newPromptBar(m)
	m.history = newHistoryPanel(m)
	m.bindings = newBindingsPanel(m)
	m.prefs = newPrefsPanel(m)
	m.widgets = []widget{m.document, m.address, m.prompt, m.history, m.bindings, m.prefs}
	m.registerHandlers()
	m.layout()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.detached {
		return nil
	}
	return waitForBus(m.engine.Bus())
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(busReadyMsg{}):       m.handleBusReadyMsg,
		reflect.TypeOf(busDoneMsg{}):        m.handleBusDoneMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate drains the bus, refreshes widgets from the engine when a
// command ran or a refresh was requested, and decides whether another frame
// is needed.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	n := m.engine.ProcessCommands(m.chain)
	if m.engine.TakeRefresh() || n > 0 || m.dirty {
		m.dirty = false
		for _, w := range m.widgets {
			w.sync()
		}
	}
	if !m.engine.Running() {
		return tea.Quit
	}
	if !m.detached && !m.frameScheduled && m.engine.TickersPending() {
		m.frameScheduled = true
		cmds = append(cmds, frameTick())
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// chain orders the widgets for dispatch: the focused one first, then the
// rest in their fixed order. The application handler is appended by the
// engine.
func (m *Model) chain() []command.Handler {
	handlers := make([]command.Handler, 0, len(m.widgets))
	if w := m.focused(); w != nil {
		handlers = append(handlers, command.HandlerFunc(w.handleCommand))
	}
	for _, w := range m.widgets {
		if w.name() != m.focus {
			handlers = append(handlers, command.HandlerFunc(w.handleCommand))
		}
	}
	return handlers
}

func (m *Model) focused() widget {
	for _, w := range m.widgets {
		if w.name() == m.focus {
			return w
		}
	}
	return nil
}

func (m *Model) setFocus(name string) {
	if m.focus == name {
		return
	}
	m.focus = name
	events.UI.Focus(name)
}

// Focus reports the name of the focused widget.
func (m *Model) Focus() string { return m.focus }

// Message returns the transient status line message.
func (m *Model) Message() string { return m.message }

func (m *Model) setMessage(text string) { m.message = text }

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Paste && m.focus == focusDocument && m.openPastedPath(key) {
		return nil
	}
	if w := m.focused(); w != nil {
		if handled, cmd := w.handleKey(key); handled {
			return cmd
		}
	}
	if b, ok := m.engine.Bindings().Match(key); ok {
		m.message = ""
		events.UI.Key(key.String(), b.Command)
		m.engine.Post(b.Command)
	}
	return nil
}

// openPastedPath treats a pasted local path like a dropped file.
func (m *Model) openPastedPath(key tea.KeyMsg) bool {
	text := strings.TrimSpace(string(key.Runes))
	text = strings.Trim(text, `"'`)
	if text == "" || strings.Contains(text, "\n") {
		return false
	}
	abs, err := filepath.Abs(text)
	if err != nil {
		return false
	}
	if _, err := os.Stat(abs); err != nil {
		return false
	}
	events.UI.Paste(abs)
	m.engine.Post(command.Open(uri.MakeFileURL(abs), false, false))
	return true
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.engine.Resize(m.width, m.height)
	events.App.Resize(m.width, m.height)
	m.layout()
	return nil
}

// bodyHeight is what remains after the address, status and help rows.
func (m *Model) bodyHeight() int {
	h := m.height - 3
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) layout() {
	m.dirty = true
	m.document.resize(m.width, m.bodyHeight())
	m.address.resize(m.width)
	m.prompt.resize(m.width)
	m.help.Width = m.width
}
