package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the calendar.
type Keymap struct {
	// Navigation
	Left      Key
	Right     Key
	Up        Key
	Down      Key
	PrevMonth Key
	NextMonth Key
	Today     Key

	// Actions
	AddEvent Key
	Copy     Key
	Export   Key
	Back     Key
	Quit     Key
	Help     Key

	// VimMode enables h/j/k/l alongside the arrow keys.
	VimMode bool
}

// DefaultKeymap returns the default key bindings.
func DefaultKeymap(vimMode bool) Keymap {
	return Keymap{
		Left:      Key{Key: "h", Help: "previous day"},
		Right:     Key{Key: "l", Help: "next day"},
		Up:        Key{Key: "k", Help: "previous week"},
		Down:      Key{Key: "j", Help: "next week"},
		PrevMonth: Key{Key: "[", Help: "previous month"},
		NextMonth: Key{Key: "]", Help: "next month"},
		Today:     Key{Key: "t", Help: "go to today"},

		AddEvent: Key{Key: "a", Help: "add event"},
		Copy:     Key{Key: "y", Help: "copy day (yy)"},
		Export:   Key{Key: "E", Help: "export .ics"},
		Back:     Key{Key: "esc", Help: "back"},
		Quit:     Key{Key: "q", Help: "quit"},
		Help:     Key{Key: "?", Help: "help"},

		VimMode: vimMode,
	}
}

// KeyState tracks multi-key sequences (like 'yy').
type KeyState struct {
	LastKey  string
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, km Keymap) (string, bool) {
	key := msg.String()

	// Handle 'yy' sequence (copy)
	if ks.WaitingY {
		ks.WaitingY = false
		if key == km.Copy.Key {
			return "copy", true
		}
		// If not 'y', reset and process normally
	}

	if key == km.Copy.Key {
		ks.WaitingY = true
		ks.LastKey = key
		return "", true // Key consumed, waiting for next
	}

	switch key {
	case "left":
		return "left", true
	case "right":
		return "right", true
	case "up":
		return "up", true
	case "down":
		return "down", true
	case km.PrevMonth.Key, "pgup":
		return "prev_month", true
	case km.NextMonth.Key, "pgdown":
		return "next_month", true
	case km.Today.Key:
		return "today", true
	case km.AddEvent.Key, "enter":
		return "add", true
	case km.Export.Key:
		return "export", true
	case km.Back.Key:
		return "back", true
	case km.Quit.Key, "ctrl+c":
		return "quit", true
	case km.Help.Key:
		return "help", true
	}

	if km.VimMode {
		switch key {
		case km.Left.Key:
			return "left", true
		case km.Right.Key:
			return "right", true
		case km.Up.Key:
			return "up", true
		case km.Down.Key:
			return "down", true
		}
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingY = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	move := "←/→/↑/↓"
	if k.VimMode {
		move = k.Left.Key + "/" + k.Right.Key + "/" + k.Up.Key + "/" + k.Down.Key + " or arrows"
	}
	return [][]string{
		{"Navigation", ""},
		{move, "Previous/next day, previous/next week"},
		{k.PrevMonth.Key + "/" + k.NextMonth.Key, "Previous/next month"},
		{k.Today.Key, "Go to today"},
		{"", ""},
		{"Events", ""},
		{k.AddEvent.Key + "/enter", "Add event to selected day"},
		{"tab", "Switch title/date field"},
		{"yy", "Copy selected day's events"},
		{k.Export.Key, "Export all events to .ics"},
		{"", ""},
		{"General", ""},
		{k.Help.Key, "Toggle help"},
		{k.Back.Key, "Close dialog / help"},
		{k.Quit.Key, "Quit"},
	}
}
