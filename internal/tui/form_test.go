package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEventForm_FieldFocus(t *testing.T) {
	f := NewEventForm("2024-10-15")

	if f.FocusedField != FormFieldTitle || !f.TitleInput.Focused() {
		t.Fatal("Expected title to be focused initially")
	}

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.FocusedField != FormFieldDate || !f.DateInput.Focused() || f.TitleInput.Focused() {
		t.Error("Expected date field focused after tab")
	}

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.FocusedField != FormFieldTitle {
		t.Error("Expected focus to wrap back to title")
	}

	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.FocusedField != FormFieldDate {
		t.Error("Expected shift+tab to move back to date")
	}
}

func TestEventForm_TypingGoesToFocusedField(t *testing.T) {
	f := NewEventForm("2024-10-15")

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Gym")})
	if f.Title() != "Gym" {
		t.Errorf("Expected title Gym, got %q", f.Title())
	}
	if f.DateKey() != "2024-10-15" {
		t.Errorf("Expected date untouched, got %s", f.DateKey())
	}

	f.Reset()
	if f.Title() != "" {
		t.Errorf("Expected empty title after reset, got %q", f.Title())
	}
}

func TestKeyState_CopySequence(t *testing.T) {
	var ks KeyState
	km := DefaultKeymap(true)
	y := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}

	if action, ok := ks.HandleKey(y, km); action != "" || !ok {
		t.Errorf("Expected first y to wait, got %q %v", action, ok)
	}
	if action, _ := ks.HandleKey(y, km); action != "copy" {
		t.Errorf("Expected copy, got %q", action)
	}

	ks.HandleKey(y, km)
	if action, _ := ks.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")}, km); action != "next_month" {
		t.Errorf("Expected broken sequence to fall through, got %q", action)
	}
	if ks.WaitingY {
		t.Error("Expected sequence reset")
	}
}
