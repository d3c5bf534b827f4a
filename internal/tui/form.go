package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/monthcal/internal/calendar"
	"github.com/hy4ri/monthcal/internal/tui/styles"
)

// FormField represents which field is currently focused in the form.
type FormField int

const (
	FormFieldTitle FormField = iota
	FormFieldDate
)

const formFieldCount = 2

// EventForm is the add-event dialog: a title and the day it goes on.
type EventForm struct {
	TitleInput textinput.Model
	DateInput  textinput.Model

	FocusedField FormField
	width        int
}

// NewEventForm creates a form targeting the selected day.
func NewEventForm(selected calendar.Key) *EventForm {
	titleInput := textinput.New()
	titleInput.Placeholder = "Event title"
	titleInput.Focus()
	titleInput.CharLimit = 200
	titleInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "YYYY-MM-DD"
	dateInput.CharLimit = 10
	dateInput.Width = 12
	dateInput.SetValue(string(selected))

	return &EventForm{
		TitleInput:   titleInput,
		DateInput:    dateInput,
		FocusedField: FormFieldTitle,
	}
}

// SetWidth sets the form width for responsive layout.
func (f *EventForm) SetWidth(width int) {
	f.width = width
	inputWidth := width - 16
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 50 {
		inputWidth = 50
	}
	f.TitleInput.Width = inputWidth
}

// Title returns the raw title text.
func (f *EventForm) Title() string {
	return f.TitleInput.Value()
}

// DateKey returns the date field clamped to the supported range.
func (f *EventForm) DateKey() calendar.Key {
	return clampDateField(strings.TrimSpace(f.DateInput.Value()))
}

// Reset clears the title for the next entry.
func (f *EventForm) Reset() {
	f.TitleInput.SetValue("")
}

// Update handles input for the form. Enter and Esc are handled by the App.
func (f *EventForm) Update(msg tea.Msg) (*EventForm, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			f.focus((f.FocusedField + 1) % formFieldCount)
			return f, nil
		case "shift+tab", "up":
			f.focus((f.FocusedField + formFieldCount - 1) % formFieldCount)
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.FocusedField {
	case FormFieldTitle:
		f.TitleInput, cmd = f.TitleInput.Update(msg)
	case FormFieldDate:
		f.DateInput, cmd = f.DateInput.Update(msg)
	}
	return f, cmd
}

func (f *EventForm) focus(field FormField) {
	f.FocusedField = field
	f.TitleInput.Blur()
	f.DateInput.Blur()
	switch field {
	case FormFieldTitle:
		f.TitleInput.Focus()
	case FormFieldDate:
		f.DateInput.Focus()
	}
}

// View renders the form.
func (f *EventForm) View() string {
	titleStyle, dateStyle := styles.Input, styles.Input
	if f.FocusedField == FormFieldTitle {
		titleStyle = styles.InputFocused
	} else {
		dateStyle = styles.InputFocused
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.DialogTitle.Render("Add Event"),
		styles.InputLabel.Render("Title"),
		titleStyle.Render(f.TitleInput.View()),
		styles.InputLabel.Render("Date"),
		dateStyle.Render(f.DateInput.View()),
		"",
		styles.HelpDesc.Render("tab switch field • enter add • esc cancel"),
	)
	return styles.Dialog.Render(body)
}

// clampDateField applies the date field's min/max bounds. Well-formed keys
// outside the range snap to the nearest bound; anything else is passed
// through for the store to reject.
func clampDateField(value string) calendar.Key {
	k := calendar.Key(value)
	if !k.Valid() {
		return k
	}
	if k < calendar.MinKey {
		return calendar.MinKey
	}
	if k > calendar.MaxKey {
		return calendar.MaxKey
	}
	return k
}
