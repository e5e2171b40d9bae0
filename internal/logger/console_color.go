package logger

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harrison/fstools/internal/models"
)

// levelColors highlights the level tag of console lines
var levelColors = map[Level]color.Attribute{
	LevelTrace: color.FgHiBlack,
	LevelDebug: color.FgCyan,
	LevelInfo:  color.FgBlue,
	LevelWarn:  color.FgYellow,
	LevelError: color.FgRed,
}

// Metric colors: cyan labels, green for results, yellow for empty or
// cancelled outcomes.
const (
	labelColor = color.FgCyan
	valueColor = color.FgWhite
	goodColor  = color.FgGreen
	emptyColor = color.FgYellow
)

// paint wraps s in ANSI codes for attr. It ignores color.NoColor, so the
// caller alone decides whether output is colored.
func paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

// searchMetrics renders "matches: N, duration: D". With colored set, a
// search with no matches shows its count in yellow, otherwise green.
func searchMetrics(result models.SearchResult, colored bool) string {
	count := len(result.Matches)
	duration := formatDuration(result.Duration)
	if !colored {
		return fmt.Sprintf("matches: %d, duration: %s", count, duration)
	}

	countColor := goodColor
	if count == 0 {
		countColor = emptyColor
	}
	return fmt.Sprintf("%s: %s, %s: %s",
		paint(labelColor, "matches"), paint(countColor, strconv.Itoa(count)),
		paint(labelColor, "duration"), paint(valueColor, duration))
}

// outcomeLabel returns a selection outcome, colored when asked
func outcomeLabel(outcome string, colored bool) string {
	if !colored {
		return outcome
	}
	switch outcome {
	case models.OutcomeSelected:
		return paint(goodColor, outcome)
	case models.OutcomeCancelled:
		return paint(emptyColor, outcome)
	default:
		return outcome
	}
}
