package calendar

import "time"

// weekdayNames start on Sunday, matching time.Weekday.
var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdayNames returns the column headers of a month grid.
func WeekdayNames() []string {
	names := make([]string, len(weekdayNames))
	copy(names, weekdayNames[:])
	return names
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FirstWeekdayOffset returns the weekday of the 1st of the month,
// 0 being Sunday. It is the number of blank cells before day 1.
func FirstWeekdayOffset(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Label returns the "Month Year" heading, e.g. "March 2024".
func Label(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

// Month is everything a renderer needs to lay out one month.
type Month struct {
	Year   int
	Month  time.Month
	Label  string
	Offset int // leading blank cells
	Days   int
}

// Grid computes the layout of a month. A month outside 1-12 rolls the
// year over.
func Grid(year int, month time.Month) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	y, m := first.Year(), first.Month()
	return Month{
		Year:   y,
		Month:  m,
		Label:  Label(y, m),
		Offset: FirstWeekdayOffset(y, m),
		Days:   DaysInMonth(y, m),
	}
}

// Weeks returns the grid rows, seven cells each. Blank cells are 0.
func (m Month) Weeks() [][]int {
	cells := m.Offset + m.Days
	rows := (cells + 6) / 7

	weeks := make([][]int, rows)
	day := 1
	for r := range weeks {
		week := make([]int, 7)
		for c := range week {
			idx := r*7 + c
			if idx >= m.Offset && day <= m.Days {
				week[c] = day
				day++
			}
		}
		weeks[r] = week
	}
	return weeks
}

// Key returns the key of a day in this month.
func (m Month) Key(day int) Key {
	return EncodeDate(m.Year, m.Month, day)
}
