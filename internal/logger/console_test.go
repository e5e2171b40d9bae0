package logger

import (
	"bytes"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/harrison/fstools/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLoggerFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogInfo("walking tree")

	// Non-terminal writers never get color codes
	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] walking tree\n$`)
	assert.Regexp(t, pattern, buf.String())
}

func TestConsoleLoggerForcedColor(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLoggerWithColor(buf, "trace", true)

	logger.LogWarn("slow disk")
	logger.LogError("gone")

	assert.Contains(t, buf.String(), "[\x1b[33mWARN\x1b[0m] slow disk\n")
	assert.Contains(t, buf.String(), "[\x1b[31mERROR\x1b[0m] gone\n")
}

func TestConsoleLoggerColorNeverDetectedForPipes(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.False(t, isTerminal(w))
	assert.False(t, isTerminal(&bytes.Buffer{}))
	assert.False(t, isTerminal(nil))
}

func TestConsoleLoggerNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "trace")

	assert.NotPanics(t, func() {
		logger.LogError("dropped")
		logger.LogSearchResult(models.SearchResult{Root: "."})
		logger.LogSelectionResult(models.SelectionResult{Index: -1})
	})
}

func TestConsoleLoggerSearchResult(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogSearchResult(models.SearchResult{
		Root:     "root",
		Name:     "a.sh",
		Matches:  []string{"root/a.sh", "root/sub/a.sh"},
		Duration: 1500 * time.Millisecond,
	})

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] Search root for "a.sh": matches: 2, duration: 1s\n$`)
	assert.Regexp(t, pattern, buf.String())
}

func TestConsoleLoggerSelectionResult(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "debug")

	logger.LogSelectionResult(models.SelectionResult{
		Options: []string{"foo", "bar"},
		Index:   1,
		Outcome: models.OutcomeSelected,
	})

	assert.Contains(t, buf.String(), "Selection: SELECTED (1/2)\n")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{0, "0ms"},
		{250 * time.Millisecond, "250ms"},
		{999 * time.Millisecond, "999ms"},
		{5 * time.Second, "5s"},
		{5*time.Second + 700*time.Millisecond, "5s"},
		{90 * time.Second, "1m30s"},
		{2 * time.Minute, "2m"},
		{2*time.Hour + 15*time.Minute, "2h15m"},
		{time.Hour + time.Minute + time.Second, "1h1m1s"},
		{3 * time.Hour, "3h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.duration))
		})
	}
}

func TestSearchMetrics(t *testing.T) {
	found := models.SearchResult{Matches: []string{"a", "b"}, Duration: 2 * time.Second}
	none := models.SearchResult{}

	assert.Equal(t, "matches: 2, duration: 2s", searchMetrics(found, false))
	assert.Equal(t, "matches: 0, duration: 0ms", searchMetrics(none, false))

	assert.Contains(t, searchMetrics(found, true), "\x1b[32m2\x1b[0m")
	assert.Contains(t, searchMetrics(none, true), "\x1b[33m0\x1b[0m")
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, models.OutcomeSelected, outcomeLabel(models.OutcomeSelected, false))
	assert.Equal(t, "\x1b[32mSELECTED\x1b[0m", outcomeLabel(models.OutcomeSelected, true))
	assert.Equal(t, "\x1b[33mCANCELLED\x1b[0m", outcomeLabel(models.OutcomeCancelled, true))
	assert.Equal(t, "OTHER", outcomeLabel("OTHER", true))
}

func TestNoOpLoggerSatisfiesLogger(t *testing.T) {
	var l Logger = NewNoOpLogger()
	assert.NotPanics(t, func() {
		l.LogInfo("nothing")
		l.LogSearchResult(models.SearchResult{})
	})
}
