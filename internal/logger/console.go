// Package logger provides logging implementations for the fstools commands.
//
// Loggers are leveled (trace, debug, info, warn, error), safe for concurrent
// use, and write either to a console stream or to a per-run log file.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/fstools/internal/models"
	"github.com/mattn/go-isatty"
)

// Logger is implemented by every logger in this package
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogSearchResult(result models.SearchResult)
	LogSelectionResult(result models.SelectionResult)
}

// ConsoleLogger writes "[HH:MM:SS] [LEVEL] message" lines to a stream.
type ConsoleLogger struct {
	mu    sync.Mutex
	w     io.Writer
	min   Level
	color bool
}

// NewConsoleLogger creates a ConsoleLogger on w that colors its output only
// when w is a terminal. A nil w discards everything. Unknown or empty
// levels mean info.
func NewConsoleLogger(w io.Writer, level string) *ConsoleLogger {
	return NewConsoleLoggerWithColor(w, level, isTerminal(w))
}

// NewConsoleLoggerWithColor is NewConsoleLogger with color chosen by the
// caller instead of detected from w.
func NewConsoleLoggerWithColor(w io.Writer, level string, useColor bool) *ConsoleLogger {
	return &ConsoleLogger{
		w:     w,
		min:   levelOrInfo(level),
		color: useColor,
	}
}

// isTerminal reports whether w is a TTY and NO_COLOR is not set
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cl *ConsoleLogger) enabled(l Level) bool {
	return cl.w != nil && l >= cl.min
}

func (cl *ConsoleLogger) LogTrace(message string) { cl.log(LevelTrace, message) }
func (cl *ConsoleLogger) LogDebug(message string) { cl.log(LevelDebug, message) }
func (cl *ConsoleLogger) LogInfo(message string)  { cl.log(LevelInfo, message) }
func (cl *ConsoleLogger) LogWarn(message string)  { cl.log(LevelWarn, message) }
func (cl *ConsoleLogger) LogError(message string) { cl.log(LevelError, message) }

func (cl *ConsoleLogger) log(l Level, message string) {
	if !cl.enabled(l) {
		return
	}

	tag := l.tag()
	if cl.color {
		tag = paint(levelColors[l], tag)
	}
	cl.write(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), tag, message))
}

// LogSearchResult prints a one-line search summary at info level:
// "[HH:MM:SS] Search <root> for "<name>": matches: N, duration: D"
func (cl *ConsoleLogger) LogSearchResult(result models.SearchResult) {
	if !cl.enabled(LevelInfo) {
		return
	}
	cl.write(fmt.Sprintf("[%s] Search %s for %q: %s\n",
		timestamp(), result.Root, result.Name, searchMetrics(result, cl.color)))
}

// LogSelectionResult prints the menu outcome at debug level:
// "[HH:MM:SS] Selection: <outcome> (<index>/<count>)"
func (cl *ConsoleLogger) LogSelectionResult(result models.SelectionResult) {
	if !cl.enabled(LevelDebug) {
		return
	}
	cl.write(fmt.Sprintf("[%s] Selection: %s (%d/%d)\n",
		timestamp(), outcomeLabel(result.Outcome, cl.color), result.Index, len(result.Options)))
}

func (cl *ConsoleLogger) write(line string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	io.WriteString(cl.w, line)
}

// timestamp returns the wall clock as HH:MM:SS
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration renders d compactly: "120ms" below one second, otherwise
// whole units such as "5s", "1m30s" or "2h15m".
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	d = d.Truncate(time.Second)
	hours := d / time.Hour
	minutes := d % time.Hour / time.Minute
	seconds := d % time.Minute / time.Second

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	if seconds > 0 || b.Len() == 0 {
		fmt.Fprintf(&b, "%ds", seconds)
	}
	return b.String()
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string)                          {}
func (n *NoOpLogger) LogDebug(message string)                          {}
func (n *NoOpLogger) LogInfo(message string)                           {}
func (n *NoOpLogger) LogWarn(message string)                           {}
func (n *NoOpLogger) LogError(message string)                          {}
func (n *NoOpLogger) LogSearchResult(result models.SearchResult)       {}
func (n *NoOpLogger) LogSelectionResult(result models.SelectionResult) {}
