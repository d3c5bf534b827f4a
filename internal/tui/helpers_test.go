package tui

import (
	"testing"

	"github.com/hy4ri/monthcal/internal/calendar"
	"github.com/mattn/go-runewidth"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Standup", 10, "Standup"},
		{"Standup meeting", 8, "Standup…"},
		{"日本語の予定", 5, "日本…"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := truncateString(tt.in, tt.width); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPadCell_ExactWidth(t *testing.T) {
	for _, s := range []string{"", " 1", "Standup meeting", "日本語の予定"} {
		if w := runewidth.StringWidth(padCell(s, 8)); w != 8 {
			t.Errorf("padCell(%q, 8) has width %d", s, w)
		}
	}
}

func TestClampDateField(t *testing.T) {
	tests := []struct {
		in   string
		want calendar.Key
	}{
		{"2024-10-15", "2024-10-15"},
		{"1969-12-31", calendar.MinKey},
		{"2200-01-02", calendar.MaxKey},
		{"2200-01-01", calendar.MaxKey},
		{"garbage", "garbage"},
	}

	for _, tt := range tests {
		if got := clampDateField(tt.in); got != tt.want {
			t.Errorf("clampDateField(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
