package bindings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultsLookup(t *testing.T) {
	table := Defaults()
	cases := map[string]string{
		"b":        "navigate.back",
		"alt+left": "navigate.back",
		"H":        "navigate.home",
		"ctrl+L":   "focus.address",
		"3":        "document.link index:3",
		"q":        "quit",
	}
	for k, want := range cases {
		b, ok := table.Lookup(k)
		if !ok || b.Command != want {
			t.Fatalf("%s: expected %q, got %+v (%v)", k, want, b, ok)
		}
	}
	if _, ok := table.Lookup("h"); ok {
		t.Fatalf("lowercase h should not match the uppercase binding")
	}
}

func TestMatchKeyMsg(t *testing.T) {
	table := Defaults()
	b, ok := table.Match(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if !ok || b.ID != "reload" {
		t.Fatalf("expected reload, got %+v", b)
	}
	b, ok = table.Match(tea.KeyMsg{Type: tea.KeyCtrlL})
	if !ok || b.ID != "address" {
		t.Fatalf("expected address, got %+v", b)
	}
	if _, ok := table.Match(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}); ok {
		t.Fatalf("z is unbound")
	}
}

func TestListHidesUnlabelled(t *testing.T) {
	for _, b := range Defaults().List() {
		if b.Label == "" {
			t.Fatalf("unlabelled binding listed: %+v", b)
		}
	}
	if len(Defaults().HelpBindings()) != len(Defaults().List()) {
		t.Fatalf("help bindings should mirror the list")
	}
}

func TestSetMovesKey(t *testing.T) {
	table := Defaults()
	if err := table.Set("reload", "b"); err != nil {
		t.Fatalf("set: %v", err)
	}
	b, _ := table.Lookup("b")
	if b.ID != "reload" {
		t.Fatalf("b should now reload, got %+v", b)
	}
	if _, ok := table.Lookup("r"); ok {
		t.Fatalf("old key should be released")
	}
	back, _ := table.Get("back")
	if len(back.Keys) != 1 || back.Keys[0] != "alt+left" {
		t.Fatalf("back should keep only alt+left, got %v", back.Keys)
	}
	if err := table.Set("nope", "x"); err == nil {
		t.Fatalf("unknown id should fail")
	}
	if err := table.Set("reload", "  "); err == nil {
		t.Fatalf("empty key should fail")
	}
}

func TestApplyOverrides(t *testing.T) {
	table := Defaults()
	err := table.Apply(map[string][]string{"home": {"ctrl+g", "Home"}})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	home, _ := table.Get("home")
	if len(home.Keys) != 2 || home.Keys[0] != "ctrl+g" || home.Keys[1] != "home" {
		t.Fatalf("unexpected keys %v", home.Keys)
	}
	if _, ok := table.Lookup("H"); ok {
		t.Fatalf("H should no longer be bound")
	}
	if err := table.Apply(map[string][]string{"home": nil}); err == nil {
		t.Fatalf("empty override should fail")
	}
}

func TestRegisterSkipsTakenKeys(t *testing.T) {
	table := New()
	table.Register(Binding{ID: "a", Label: "A", Command: "a", Keys: []string{"x"}})
	table.Register(Binding{ID: "b", Label: "B", Command: "b", Keys: []string{"x"}})
	if len(table.List()) != 1 {
		t.Fatalf("binding with no free keys should be dropped")
	}
}
