package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/fstools/internal/models"
)

// latestLink always points at the newest run log in a log directory
const latestLink = "latest.log"

// FileLogger writes one command run to its own file in a log directory,
// named run-YYYYMMDD-HHMMSS-<run id prefix>.log.
type FileLogger struct {
	mu    sync.Mutex
	file  *os.File
	path  string
	runID string
	min   Level
}

// NewFileLogger starts a run log in dir, creating dir if needed, and points
// dir/latest.log at it. Unknown or empty levels mean info.
func NewFileLogger(dir, level string) (*FileLogger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runID := uuid.NewString()
	started := time.Now()
	name := fmt.Sprintf("run-%s-%s.log", started.Format("20060102-150405"), runID[:8])
	path := filepath.Join(dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	if err := pointLatestAt(dir, name); err != nil {
		file.Close()
		return nil, err
	}

	fl := &FileLogger{
		file:  file,
		path:  path,
		runID: runID,
		min:   levelOrInfo(level),
	}
	fl.write(fmt.Sprintf("=== fstools Run Log ===\nRun ID: %s\nStarted at: %s\n\n",
		runID, started.Format(time.RFC3339)))

	return fl, nil
}

// pointLatestAt replaces dir/latest.log with a relative symlink to name
func pointLatestAt(dir, name string) error {
	link := filepath.Join(dir, latestLink)
	if err := os.Remove(link); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove old %s: %w", latestLink, err)
	}
	if err := os.Symlink(name, link); err != nil {
		return fmt.Errorf("failed to link %s: %w", latestLink, err)
	}
	return nil
}

// Path returns the run log file
func (fl *FileLogger) Path() string {
	return fl.path
}

// RunID returns the id written in the run log header
func (fl *FileLogger) RunID() string {
	return fl.runID
}

func (fl *FileLogger) LogTrace(message string) { fl.log(LevelTrace, message) }
func (fl *FileLogger) LogDebug(message string) { fl.log(LevelDebug, message) }
func (fl *FileLogger) LogInfo(message string)  { fl.log(LevelInfo, message) }
func (fl *FileLogger) LogWarn(message string)  { fl.log(LevelWarn, message) }
func (fl *FileLogger) LogError(message string) { fl.log(LevelError, message) }

func (fl *FileLogger) log(l Level, message string) {
	if l < fl.min {
		return
	}
	fl.write(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), l.tag(), message))
}

// LogSearchResult writes a search summary block at info level. At debug
// and below every matched path is listed under it.
func (fl *FileLogger) LogSearchResult(result models.SearchResult) {
	if LevelInfo < fl.min {
		return
	}

	block := newSummary("SEARCH SUMMARY")
	block.field("Root", result.Root)
	block.field("Name", result.Name)
	block.field("Matches", fmt.Sprint(len(result.Matches)))
	block.field("Total time", formatDuration(result.Duration))
	if LevelDebug >= fl.min {
		for _, match := range result.Matches {
			block.line("  " + match)
		}
	}

	fl.write(block.String())
}

// LogSelectionResult writes a selection summary block at info level
func (fl *FileLogger) LogSelectionResult(result models.SelectionResult) {
	if LevelInfo < fl.min {
		return
	}

	block := newSummary("SELECTION SUMMARY")
	block.field("Options", fmt.Sprint(len(result.Options)))
	block.field("Outcome", result.Outcome)
	if selected, ok := result.Selected(); ok {
		block.field("Selected", fmt.Sprintf("%d (%s)", result.Index, selected))
	}
	block.field("Total time", formatDuration(result.Duration))

	fl.write(block.String())
}

// Close syncs and closes the run log. Later calls are no-ops and later
// messages are dropped.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file == nil {
		return nil
	}
	file := fl.file
	fl.file = nil

	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("failed to sync run log: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close run log: %w", err)
	}
	return nil
}

func (fl *FileLogger) write(s string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file != nil {
		fl.file.WriteString(s)
	}
}

// summary builds a titled block whose lines share one timestamp
type summary struct {
	b  strings.Builder
	ts string
}

func newSummary(title string) *summary {
	s := &summary{ts: timestamp()}
	s.b.WriteString("\n")
	s.line("=== " + title + " ===")
	return s
}

func (s *summary) line(text string) {
	fmt.Fprintf(&s.b, "[%s] %s\n", s.ts, text)
}

// field writes "Key:" padded so values line up in one column
func (s *summary) field(key, value string) {
	s.line(fmt.Sprintf("%-11s %s", key+":", value))
}

func (s *summary) String() string {
	return s.b.String()
}
