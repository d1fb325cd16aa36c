package prompt

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "ctrl+a":
		return tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg{Code: r, Text: key}
}

func update(t *testing.T, m multiSelectModel, keys ...string) multiSelectModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(multiSelectModel)
	}
	return m
}

var options = []string{"api-gateway", "web-frontend", "auth-service"}

func TestMultiSelectToggle(t *testing.T) {
	m := newMultiSelectModel("pick", options, false)
	m = update(t, m, "space", "down", "space")

	got := m.indices()
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("indices = %v, want [0 1]", got)
	}

	// Toggling again deselects.
	m = update(t, m, "space")
	if got := m.indices(); len(got) != 1 || got[0] != 0 {
		t.Errorf("indices = %v, want [0]", got)
	}
}

func TestMultiSelectPreselectAll(t *testing.T) {
	m := newMultiSelectModel("pick", options, true)
	if got := m.indices(); len(got) != len(options) {
		t.Errorf("indices = %v, want all", got)
	}
}

func TestMultiSelectFilterNarrowsList(t *testing.T) {
	m := newMultiSelectModel("pick", options, false)
	m = update(t, m, "a", "p", "i")

	if len(m.filtered) != 1 || m.options[m.filtered[0]] != "api-gateway" {
		t.Fatalf("filtered = %v, want just api-gateway", m.filtered)
	}

	// Selection through the filter targets the original index.
	m = update(t, m, "space")
	if got := m.indices(); len(got) != 1 || got[0] != 0 {
		t.Errorf("indices = %v, want [0]", got)
	}

	// Backspacing restores the full list without losing the selection.
	m = update(t, m, "backspace", "backspace", "backspace")
	if len(m.filtered) != len(options) {
		t.Errorf("filtered = %v, want all options", m.filtered)
	}
	if got := m.indices(); len(got) != 1 {
		t.Errorf("selection lost after clearing filter: %v", got)
	}
}

func TestMultiSelectEnterAccepts(t *testing.T) {
	m := newMultiSelectModel("pick", options, false)
	m = update(t, m, "space", "enter")
	if !m.done || !m.accepted {
		t.Error("enter should finish and accept")
	}
}

func TestMultiSelectEscCancels(t *testing.T) {
	m := newMultiSelectModel("pick", options, false)
	m = update(t, m, "esc")
	if !m.done || m.accepted {
		t.Error("esc should finish without accepting")
	}
}

func TestMultiSelectCursorStaysInBounds(t *testing.T) {
	m := newMultiSelectModel("pick", options, false)
	m = update(t, m, "down", "down", "down", "down")
	if m.cursor != len(options)-1 {
		t.Errorf("cursor = %d, want clamped to %d", m.cursor, len(options)-1)
	}

	// Narrowing the filter pulls the cursor back in range.
	m = update(t, m, "a", "p", "i")
	if m.cursor >= len(m.filtered) {
		t.Errorf("cursor = %d out of bounds for %d filtered", m.cursor, len(m.filtered))
	}
}
