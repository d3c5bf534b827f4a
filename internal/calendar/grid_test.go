package calendar

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2100, time.February, 28},
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.September, 30},
		{2024, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDaysInMonth_MatchesTimePackage(t *testing.T) {
	for y := 1970; y <= 2200; y++ {
		for m := time.January; m <= time.December; m++ {
			want := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
			if got := DaysInMonth(y, m); got != want {
				t.Fatalf("DaysInMonth(%d, %s) = %d, want %d", y, m, got, want)
			}
		}
	}
}

func TestFirstWeekdayOffset(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{1970, time.January, 4}, // Thursday
		{2024, time.September, 0},
		{2024, time.March, 5},
		{2200, time.January, 3},
	}

	for _, tt := range tests {
		if got := FirstWeekdayOffset(tt.year, tt.month); got != tt.want {
			t.Errorf("FirstWeekdayOffset(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label(2024, time.March); got != "March 2024" {
		t.Errorf("Expected March 2024, got %q", got)
	}
	if got := Label(1970, time.January); got != "January 1970" {
		t.Errorf("Expected January 1970, got %q", got)
	}
}

func TestWeekdayNames(t *testing.T) {
	names := WeekdayNames()
	if len(names) != 7 || names[0] != "Sun" || names[6] != "Sat" {
		t.Errorf("Unexpected weekday names %v", names)
	}
	names[0] = "changed"
	if WeekdayNames()[0] != "Sun" {
		t.Error("WeekdayNames returned shared storage")
	}
}

func TestGrid_RollsOverYear(t *testing.T) {
	m := Grid(2023, 13)
	if m.Year != 2024 || m.Month != time.January {
		t.Errorf("Expected 2024-01, got %d-%d", m.Year, m.Month)
	}
	m = Grid(2024, 0)
	if m.Year != 2023 || m.Month != time.December {
		t.Errorf("Expected 2023-12, got %d-%d", m.Year, m.Month)
	}
}

func TestGrid_Weeks(t *testing.T) {
	// March 2024 starts on a Friday.
	m := Grid(2024, time.March)
	weeks := m.Weeks()

	if len(weeks) != 6 {
		t.Fatalf("Expected 6 weeks, got %d", len(weeks))
	}
	for i := 0; i < 5; i++ {
		if weeks[0][i] != 0 {
			t.Errorf("Expected blank cell at %d, got %d", i, weeks[0][i])
		}
	}
	if weeks[0][5] != 1 || weeks[0][6] != 2 {
		t.Errorf("Unexpected first week %v", weeks[0])
	}
	if weeks[5][0] != 31 || weeks[5][1] != 0 {
		t.Errorf("Unexpected last week %v", weeks[5])
	}

	seen := 0
	for _, w := range weeks {
		if len(w) != 7 {
			t.Fatalf("Week has %d cells", len(w))
		}
		for _, d := range w {
			if d != 0 {
				seen++
			}
		}
	}
	if seen != m.Days {
		t.Errorf("Expected %d day cells, got %d", m.Days, seen)
	}
}

func TestGrid_FourWeekFebruary(t *testing.T) {
	// February 2015 starts on Sunday and has 28 days.
	weeks := Grid(2015, time.February).Weeks()
	if len(weeks) != 4 {
		t.Errorf("Expected 4 weeks, got %d", len(weeks))
	}
}

func TestMonth_Key(t *testing.T) {
	if got := Grid(2024, time.February).Key(29); got != "2024-02-29" {
		t.Errorf("Expected 2024-02-29, got %s", got)
	}
}
