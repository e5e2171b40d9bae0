package logger

import (
	"fmt"
	"strings"
)

// Level orders log messages by severity
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error"}

// String returns the lowercase name used in config files and flags
func (l Level) String() string {
	if l < LevelTrace || l > LevelError {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// tag is the label printed inside log lines, e.g. "WARN"
func (l Level) tag() string {
	return strings.ToUpper(l.String())
}

// ParseLevel accepts a level name in any case with optional surrounding
// whitespace. Unknown names return LevelInfo and an error.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q, must be one of: %s", s, strings.Join(levelNames[:], ", "))
}

// IsValidLevel reports whether ParseLevel accepts s
func IsValidLevel(s string) bool {
	_, err := ParseLevel(s)
	return err == nil
}

// levelOrInfo parses s, treating empty or unknown names as info
func levelOrInfo(s string) Level {
	l, _ := ParseLevel(s)
	return l
}
