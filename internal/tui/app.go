// Package tui provides the terminal user interface for the calendar.
package tui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/monthcal/internal/calendar"
	"github.com/hy4ri/monthcal/internal/config"
	"github.com/hy4ri/monthcal/internal/log"
)

// App is the main Bubble Tea model for the application. It is the
// presentation layer: every state change goes through the store.
type App struct {
	// Dependencies
	store  *calendar.Store
	config *config.Config

	// UI state
	form      *EventForm // nil when the add-event dialog is closed
	showHelp  bool
	statusMsg string
	notice    string
	width     int
	height    int

	keyState KeyState
	keymap   Keymap

	// Side effects, replaceable in tests.
	notify      func(title, message string) error
	copyText    func(text string) error
	writeExport func(path string, data []byte) error
	now         func() time.Time
}

// NewApp creates a new App instance around store.
func NewApp(store *calendar.Store, cfg *config.Config) *App {
	return &App{
		store:  store,
		config: cfg,
		keymap: DefaultKeymap(cfg.UI.VimMode),
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		copyText: clipboard.WriteAll,
		writeExport: func(path string, data []byte) error {
			return os.WriteFile(path, data, 0644)
		},
		now: time.Now,
	}
}

// Message types
type statusMsg struct{ msg string }
type errMsg struct{ err error }

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form.SetWidth(a.width)
		}
		return a, nil

	case statusMsg:
		a.statusMsg = msg.msg
		a.notice = ""
		return a, nil

	case errMsg:
		a.statusMsg = ""
		a.notice = msg.err.Error()
		return a, nil

	case tea.KeyMsg:
		// Notices last until the next key press.
		a.notice = ""
		a.statusMsg = ""
		if a.form != nil {
			return a.handleFormKey(msg)
		}
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey processes keyboard input on the month grid.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok := a.keyState.HandleKey(msg, a.keymap)
	if !ok || action == "" {
		return a, nil
	}

	if a.showHelp {
		switch action {
		case "help", "back":
			a.showHelp = false
		case "quit":
			return a, tea.Quit
		}
		return a, nil
	}

	switch action {
	case "quit":
		return a, tea.Quit
	case "help":
		a.showHelp = true
	case "left":
		a.moveCursor(-1)
	case "right":
		a.moveCursor(1)
	case "up":
		a.moveCursor(-7)
	case "down":
		a.moveCursor(7)
	case "prev_month":
		return a, a.navigate(calendar.Previous)
	case "next_month":
		return a, a.navigate(calendar.Next)
	case "today":
		if err := a.store.GoToToday(); err != nil {
			return a, a.showNotice(err)
		}
	case "add":
		a.form = NewEventForm(a.store.Selected())
		a.form.SetWidth(a.width)
	case "copy":
		return a, a.copySelectedDay()
	case "export":
		return a, a.exportICS()
	}
	return a, nil
}

// handleFormKey routes keys to the add-event dialog.
func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.form = nil
		return a, nil
	case "ctrl+c":
		return a, tea.Quit
	case "enter":
		return a, a.submitForm()
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

// submitForm applies the date field, then adds the event. The dialog stays
// open on any failure so the user can correct the input.
func (a *App) submitForm() tea.Cmd {
	key := a.form.DateKey()
	if key != a.store.Selected() {
		if err := a.store.SetSelectionKey(key); err != nil {
			return a.showNotice(err)
		}
		a.form.DateInput.SetValue(string(key))
	}

	ev, err := a.store.AddEvent(a.form.Title())
	if err != nil {
		return a.showNotice(err)
	}

	log.Info("event added", "id", ev.ID, "day", ev.Day, "title", ev.Title)
	a.form.Reset()
	a.form = nil
	a.statusMsg = fmt.Sprintf("Added %q on %s", ev.Title, ev.Day)
	return nil
}

// navigate moves one month and reports the range notice on failure.
func (a *App) navigate(dir calendar.Direction) tea.Cmd {
	if err := a.store.Navigate(dir); err != nil {
		return a.showNotice(err)
	}
	year, month := a.store.Current()
	log.Debug("navigated", "direction", dir, "year", year, "month", int(month))
	return nil
}

// cursorDay returns the selected day if it lies in the displayed month, else 1.
func (a *App) cursorDay() int {
	m := a.store.Month()
	for d := 1; d <= m.Days; d++ {
		if a.store.IsSelected(d) {
			return d
		}
	}
	return 1
}

// moveCursor shifts the selection by delta days, clamped to the displayed month.
func (a *App) moveCursor(delta int) {
	days := a.store.Month().Days
	day := a.cursorDay() + delta
	if day < 1 {
		day = 1
	}
	if day > days {
		day = days
	}
	a.store.SelectDay(day)
}

// showNotice surfaces a store failure. Empty titles are ignored silently.
func (a *App) showNotice(err error) tea.Cmd {
	text := calendar.Notice(err)
	if text == "" {
		return nil
	}

	if errors.Is(err, calendar.ErrInvalidKey) {
		log.Debug("rejected date", "err", err)
	} else {
		log.Info("notice", "text", text, "err", err)
	}
	a.notice = text

	if !a.config.UI.DesktopNotices {
		return nil
	}
	notify := a.notify
	return func() tea.Msg {
		if err := notify("monthcal", text); err != nil {
			log.Error("failed to send notification", err)
		}
		return nil
	}
}

// copySelectedDay copies the selected day's events to the clipboard.
func (a *App) copySelectedDay() tea.Cmd {
	day := a.store.Selected()
	events := a.store.EventsOn(day)
	if len(events) == 0 {
		a.statusMsg = "No events to copy"
		return nil
	}

	content := formatDay(day, events)
	copyText := a.copyText
	return func() tea.Msg {
		if err := copyText(content); err != nil {
			log.Error("clipboard write failed", err)
			return errMsg{fmt.Errorf("failed to copy: %w", err)}
		}
		return statusMsg{msg: fmt.Sprintf("Copied %d event(s) from %s", len(events), day)}
	}
}

// exportICS writes every event to the configured .ics path.
func (a *App) exportICS() tea.Cmd {
	days := a.store.All()
	if len(days) == 0 {
		a.statusMsg = "No events to export"
		return nil
	}

	path, err := a.config.ICSPath()
	if err != nil {
		a.notice = err.Error()
		return nil
	}

	now, write := a.now(), a.writeExport
	count := a.store.Count()
	return func() tea.Msg {
		var buf bytes.Buffer
		if err := calendar.WriteICS(&buf, days, now); err != nil {
			log.Error("export failed", err, "path", path)
			return errMsg{err}
		}
		if err := write(path, buf.Bytes()); err != nil {
			log.Error("export failed", err, "path", path)
			return errMsg{fmt.Errorf("failed to write %s: %w", path, err)}
		}
		log.Info("exported", "path", path, "events", count)
		return statusMsg{msg: fmt.Sprintf("Exported %d event(s) to %s", count, path)}
	}
}

// formatDay renders a day's events as plain text for the clipboard.
func formatDay(day calendar.Key, events []calendar.Event) string {
	var b strings.Builder
	b.WriteString(string(day))
	b.WriteString("\n")
	for _, ev := range events {
		b.WriteString("- ")
		b.WriteString(ev.Title)
		b.WriteString("\n")
	}
	return b.String()
}
