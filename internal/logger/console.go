package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"jd/internal/domain"
)

// ConsoleLogger writes leveled messages to a writer.
// Color is used only when the writer is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	level       string
	mutex       sync.Mutex
	colorOutput bool
}

var _ Logger = (*ConsoleLogger)(nil)

// NewConsoleLogger creates a ConsoleLogger. An empty or unknown level means info.
func NewConsoleLogger(writer io.Writer, level string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		level:       NormalizeLevel(level),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal reports whether w itself is a terminal. NO_COLOR turns
// color off everywhere.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Level returns the configured minimum level
func (cl *ConsoleLogger) Level() string {
	return cl.level
}

func (cl *ConsoleLogger) Tracef(format string, args ...any) {
	cl.logf(LevelTrace, format, args...)
}

func (cl *ConsoleLogger) Debugf(format string, args ...any) {
	cl.logf(LevelDebug, format, args...)
}

func (cl *ConsoleLogger) Infof(format string, args ...any) {
	cl.logf(LevelInfo, format, args...)
}

func (cl *ConsoleLogger) Warnf(format string, args ...any) {
	cl.logf(LevelWarn, format, args...)
}

func (cl *ConsoleLogger) Errorf(format string, args ...any) {
	cl.logf(LevelError, format, args...)
}

func (cl *ConsoleLogger) Diagnostic(d domain.Diagnostic) {
	cl.logf(LevelWarn, "%s", d)
}

func (cl *ConsoleLogger) logf(level, format string, args ...any) {
	if cl.writer == nil || levelToInt(level) < levelToInt(cl.level) {
		return
	}

	message := fmt.Sprintf(format, args...)
	tag := strings.ToUpper(level)
	if cl.colorOutput {
		tag = colorize(tag)
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	fmt.Fprintf(cl.writer, "[%s] %s\n", tag, message)
}

var levelColors = map[string][]color.Attribute{
	"TRACE": {color.FgHiBlack},
	"DEBUG": {color.FgCyan},
	"INFO":  {color.FgBlue},
	"WARN":  {color.FgYellow},
	"ERROR": {color.FgRed, color.Bold},
}

// colorize forces color on: color.NoColor describes stdout, and the
// logger usually writes to stderr
func colorize(tag string) string {
	attrs, ok := levelColors[tag]
	if !ok {
		return tag
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(tag)
}
