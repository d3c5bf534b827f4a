package log

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, LevelInfo)
	defer SetOutput(io.Discard, LevelInfo)

	Debug("hidden")
	Info("shown", "day", "2024-10-15", "count", 2)
	Error("failed", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("Debug line written at info level")
	}
	if !strings.Contains(out, "[INFO] shown day=2024-10-15 count=2") {
		t.Errorf("Missing info line:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR] failed err=boom") {
		t.Errorf("Missing error line:\n%s", out)
	}
}

func TestFormatKVs_DropsOddAndNonStringKeys(t *testing.T) {
	if got := formatKVs("a", 1, 2, 3, "b"); got != " a=1" {
		t.Errorf("Unexpected %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug": LevelDebug,
		"ERROR": LevelError,
		"info":  LevelInfo,
		"":      LevelInfo,
		"loud":  LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := Setup(path, LevelDebug); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	Debug("hello")
	if err := Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[DEBUG] hello") {
		t.Errorf("Unexpected log contents %q", data)
	}
}
