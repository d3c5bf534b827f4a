// Package log is a small leveled key/value logger. The terminal belongs to
// the UI, so output goes to a debug file or nowhere.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"
	"time"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelError Level = "ERROR"
)

var (
	mu       sync.Mutex
	logger   = stdlog.New(io.Discard, "", 0)
	minLevel = LevelInfo
	closer   io.Closer
)

// ParseLevel maps a config value to a Level. Unknown values mean info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Setup opens path for appending and logs to it from then on.
// An empty path keeps logging disabled.
func Setup(path string, level Level) error {
	if path == "" {
		SetOutput(io.Discard, level)
		return nil
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	SetOutput(f, level)

	mu.Lock()
	closer = f
	mu.Unlock()
	return nil
}

// SetOutput directs log lines to w.
func SetOutput(w io.Writer, level Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = stdlog.New(w, "", 0)
	minLevel = level
}

// Close releases the file opened by Setup.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = stdlog.New(io.Discard, "", 0)
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func Debug(msg string, kv ...any) {
	logWithLevel(LevelDebug, msg, kv...)
}

func Info(msg string, kv ...any) {
	logWithLevel(LevelInfo, msg, kv...)
}

func Error(msg string, err error, kv ...any) {
	extended := append([]any{"err", err}, kv...)
	logWithLevel(LevelError, msg, extended...)
}

func logWithLevel(level Level, msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled(level) {
		return
	}

	// 2025-01-01T00:00:00Z [LEVEL] msg key=value ...
	line := time.Now().Format(time.RFC3339) + " [" + string(level) + "] " + msg
	line += formatKVs(kv...)
	logger.Println(line)
}

func enabled(level Level) bool {
	switch minLevel {
	case LevelDebug:
		return true
	case LevelInfo:
		return level != LevelDebug
	case LevelError:
		return level == LevelError
	default:
		return true
	}
}

func formatKVs(kv ...any) string {
	var b strings.Builder
	// Pairs only; an odd trailing value is dropped.
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(fmt.Sprint(kv[i+1]))
	}
	return b.String()
}
