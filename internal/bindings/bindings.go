// Package bindings maps keys to command lines.
package bindings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Binding ties one or more keys to a command. Unlabelled bindings are active
// but hidden from the bindings panel.
type Binding struct {
	ID      string
	Label   string
	Command string
	Keys    []string
}

// Help returns the binding as a bubbles key.Binding.
func (b Binding) Help() key.Binding {
	help := strings.Join(b.Keys, "/")
	return key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(help, b.Label))
}

// Table holds the active bindings in registration order.
type Table struct {
	bindings []*Binding
	index    map[string]*Binding
}

// New returns an empty table.
func New() *Table {
	return &Table{index: make(map[string]*Binding)}
}

// Defaults returns the stock key map.
func Defaults() *Table {
	t := New()
	reg := func(id, label, cmd string, keys ...string) {
		t.Register(Binding{ID: id, Label: label, Command: cmd, Keys: keys})
	}
	reg("back", "Go back", "navigate.back", "alt+left", "b")
	reg("forward", "Go forward", "navigate.forward", "alt+right", "f")
	reg("home", "Go home", "navigate.home", "H")
	reg("reload", "Reload page", "navigate.reload", "r")
	reg("stop", "Stop loading", "document.stop", "esc")
	reg("address", "Edit address", "focus.address", "ctrl+l", "g")
	reg("history", "History", "history.toggle", "ctrl+h")
	reg("bindings", "Key bindings", "bindings.toggle", "?")
	reg("prefs", "Preferences", "preferences", "p")
	reg("prompt", "Command prompt", "prompt.command", ":")
	reg("quit", "Quit", "quit", "ctrl+q", "q")
	for i := 1; i <= 9; i++ {
		reg(fmt.Sprintf("link%d", i), "", fmt.Sprintf("document.link index:%d", i), fmt.Sprintf("%d", i))
	}
	return t
}

// Register adds b. Keys already taken by another binding are skipped; a
// binding left with no keys is not added.
func (t *Table) Register(b Binding) {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range normalizeKeyList(b.Keys) {
		if _, taken := t.index[k]; taken {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 || strings.TrimSpace(b.ID) == "" {
		return
	}
	copyBinding := b
	copyBinding.Keys = keys
	t.bindings = append(t.bindings, &copyBinding)
	for _, k := range keys {
		t.index[k] = &copyBinding
	}
}

// Lookup returns the binding for a key name such as "ctrl+l".
func (t *Table) Lookup(name string) (Binding, bool) {
	b, ok := t.index[normalizeKeyName(name)]
	if !ok {
		return Binding{}, false
	}
	return *b, true
}

// Match returns the binding a key press triggers.
func (t *Table) Match(msg tea.KeyMsg) (Binding, bool) {
	for _, b := range t.bindings {
		if key.Matches(msg, b.Help()) {
			return *b, true
		}
	}
	return Binding{}, false
}

// Get returns the binding with id.
func (t *Table) Get(id string) (Binding, bool) {
	for _, b := range t.bindings {
		if b.ID == id {
			return *b, true
		}
	}
	return Binding{}, false
}

// Set rebinds id to a single key. The key is taken away from whichever
// binding held it before.
func (t *Table) Set(id, keyName string) error {
	k := normalizeKeyName(keyName)
	if k == "" {
		return fmt.Errorf("rebind %s: empty key", id)
	}
	var target *Binding
	for _, b := range t.bindings {
		if b.ID == id {
			target = b
			break
		}
	}
	if target == nil {
		return fmt.Errorf("rebind %s: unknown binding", id)
	}
	if prev, ok := t.index[k]; ok && prev != target {
		prev.Keys = removeKey(prev.Keys, k)
	}
	for _, old := range target.Keys {
		delete(t.index, old)
	}
	target.Keys = []string{k}
	t.index[k] = target
	return nil
}

// Apply replaces the keys of the named bindings, e.g. from the config file.
func (t *Table) Apply(overrides map[string][]string) error {
	ids := make([]string, 0, len(overrides))
	for id := range overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		keys := normalizeKeyList(overrides[id])
		if len(keys) == 0 {
			return fmt.Errorf("binding %q: keys are required", id)
		}
		for i, k := range keys {
			if i == 0 {
				if err := t.Set(id, k); err != nil {
					return err
				}
				continue
			}
			if err := t.addKey(id, k); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Table) addKey(id, k string) error {
	for _, b := range t.bindings {
		if b.ID != id {
			continue
		}
		if prev, ok := t.index[k]; ok {
			if prev == b {
				return nil
			}
			prev.Keys = removeKey(prev.Keys, k)
		}
		b.Keys = append(b.Keys, k)
		t.index[k] = b
		return nil
	}
	return fmt.Errorf("rebind %s: unknown binding", id)
}

// List returns the labelled bindings, in registration order.
func (t *Table) List() []Binding {
	out := make([]Binding, 0, len(t.bindings))
	for _, b := range t.bindings {
		if b.Label == "" {
			continue
		}
		dup := *b
		dup.Keys = append([]string(nil), b.Keys...)
		out = append(out, dup)
	}
	return out
}

// HelpBindings returns key.Binding values for the labelled bindings.
func (t *Table) HelpBindings() []key.Binding {
	list := t.List()
	out := make([]key.Binding, 0, len(list))
	for _, b := range list {
		if len(b.Keys) == 0 {
			continue
		}
		out = append(out, b.Help())
	}
	return out
}

func removeKey(keys []string, k string) []string {
	out := keys[:0]
	for _, existing := range keys {
		if existing != k {
			out = append(out, existing)
		}
	}
	return out
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return " "
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		return trimmed
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}
