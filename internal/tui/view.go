package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/monthcal/internal/calendar"
	"github.com/hy4ri/monthcal/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.showHelp {
		return styles.App.Render(a.renderHelp())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		"",
		a.renderGrid(),
		a.renderSelectedDay(),
		"",
		a.renderStatusBar(),
	)

	if a.form != nil {
		dialog := a.form.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, dialog)
		}
		return styles.App.Render(content + "\n\n" + dialog)
	}

	return styles.App.Render(content)
}

func (a *App) renderHeader() string {
	m := a.store.Month()
	return styles.Title.Render(m.Label) + "  " +
		styles.HelpDesc.Render("[ ] prev/next month • a add event • ? help")
}

// renderGrid draws the month as a bordered table, one row of day numbers
// followed by one row per event slot.
func (a *App) renderGrid() string {
	cw := a.config.UI.CellWidth
	m := a.store.Month()

	var b strings.Builder
	border := func(left, mid, right string) string {
		return styles.CalendarCellBorder.Render(
			left+strings.Repeat(strings.Repeat("─", cw)+mid, 6)+strings.Repeat("─", cw)+right) + "\n"
	}
	bar := styles.CalendarCellBorder.Render("│")

	// Weekday headers
	b.WriteString(border("┌", "┬", "┐"))
	b.WriteString(bar)
	for _, wd := range calendar.WeekdayNames() {
		b.WriteString(styles.CalendarWeekday.Render(padCell(" "+wd, cw)))
		b.WriteString(bar)
	}
	b.WriteString("\n")

	for _, week := range m.Weeks() {
		b.WriteString(border("├", "┼", "┤"))

		// Day numbers row
		b.WriteString(bar)
		for weekday, day := range week {
			b.WriteString(a.renderDayCell(day, weekday, cw))
			b.WriteString(bar)
		}
		b.WriteString("\n")

		// Event rows
		for slot := 0; slot < calendar.MaxEventsPerDay; slot++ {
			b.WriteString(bar)
			for _, day := range week {
				cell := strings.Repeat(" ", cw)
				if day != 0 {
					if events := a.store.EventsFor(day); slot < len(events) {
						cell = styles.CalendarEventPreview.Render(padCell(" "+events[slot].Title, cw))
					}
				}
				b.WriteString(cell)
				b.WriteString(bar)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString(border("└", "┴", "┘"))

	return b.String()
}

func (a *App) renderDayCell(day, weekday, cw int) string {
	if day == 0 {
		return strings.Repeat(" ", cw)
	}

	style := styles.CalendarDay
	switch {
	case a.store.IsSelected(day):
		style = styles.CalendarDaySelected
	case a.store.IsToday(day):
		style = styles.CalendarDayToday
	case len(a.store.EventsFor(day)) > 0:
		style = styles.CalendarDayWithEvents
	case weekday == 0 || weekday == 6:
		style = styles.CalendarDayWeekend
	}
	return style.Render(padCell(fmt.Sprintf(" %2d", day), cw))
}

func (a *App) renderSelectedDay() string {
	key := a.store.Selected()
	heading := string(key)
	if t, err := calendar.Decode(key); err == nil {
		heading = t.Format("Monday, January 2, 2006")
	}

	var b strings.Builder
	b.WriteString(styles.Subtitle.Render(heading))
	b.WriteString("\n")

	events := a.store.EventsOn(key)
	if len(events) == 0 {
		b.WriteString(styles.HelpDesc.Render("No events for this day"))
		return b.String()
	}
	for _, ev := range events {
		b.WriteString("  • " + ev.Title + "\n")
	}
	b.WriteString(styles.HelpDesc.Render(fmt.Sprintf("%d/%d events", len(events), calendar.MaxEventsPerDay)))
	return b.String()
}

func (a *App) renderStatusBar() string {
	switch {
	case a.notice != "":
		return styles.StatusBarError.Render(" " + a.notice + " ")
	case a.statusMsg != "":
		return styles.StatusBarSuccess.Render(" " + a.statusMsg + " ")
	}

	hints := []struct{ key, desc string }{
		{"←→↑↓", "move"},
		{a.keymap.Today.Key, "today"},
		{"yy", "copy"},
		{a.keymap.Export.Key, "export"},
		{a.keymap.Quit.Key, "quit"},
	}
	var parts []string
	for _, h := range hints {
		parts = append(parts, styles.StatusBarKey.Render(h.key)+styles.StatusBarText.Render(" "+h.desc))
	}
	return styles.StatusBar.Render(strings.Join(parts, styles.StatusBarText.Render("  ")))
}

func (a *App) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, item := range a.keymap.HelpItems() {
		switch {
		case item[0] == "" && item[1] == "":
			b.WriteString("\n")
		case item[1] == "":
			b.WriteString(styles.Subtitle.Render(item[0]))
			b.WriteString("\n")
		default:
			b.WriteString("  ")
			b.WriteString(styles.HelpKey.Render(padCell(item[0], 18)))
			b.WriteString(styles.HelpDesc.Render(item[1]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("Press ? or esc to close"))
	return b.String()
}
