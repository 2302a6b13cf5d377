// Package logger provides leveled console logging for the jd commands.
//
// Output goes to stderr so that stdout stays reserved for results a shell
// can consume, e.g. the path printed by "jd cd".
package logger

import (
	"io"
	"strings"

	"jd/internal/domain"
)

// Level constants for filtering
const (
	LevelTrace = "trace"
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Logger is what the adapters and commands log through
type Logger interface {
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// Diagnostic reports a scan or validation finding at warn level
	Diagnostic(d domain.Diagnostic)
}

// Nop returns a logger that discards everything
func Nop() Logger {
	return NewConsoleLogger(io.Discard, LevelError)
}

// NormalizeLevel lowercases level and falls back to info when it is unknown
func NormalizeLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError:
		return normalized
	case "warning":
		return LevelWarn
	default:
		return LevelInfo
	}
}

// ValidLevel reports whether level names a known level
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelTrace, LevelDebug, LevelInfo, LevelWarn, "warning", LevelError:
		return true
	}
	return false
}

func levelToInt(level string) int {
	switch level {
	case LevelTrace:
		return 0
	case LevelDebug:
		return 1
	case LevelInfo:
		return 2
	case LevelWarn:
		return 3
	case LevelError:
		return 4
	default:
		return 2
	}
}
