// Package selector prompts the user to pick one entry from a numbered list.
package selector

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// CancelSentinel is the first character of an input line that cancels the menu
const CancelSentinel = 'q'

// Selection is the index chosen by the user, or None
type Selection int

// None means no option was selected: the list was empty or the user cancelled
const None Selection = -1

// IsNone reports whether no option was selected
func (s Selection) IsNone() bool {
	return s < 0
}

// Index returns the selected index and true, or -1 and false for None
func (s Selection) Index() (int, bool) {
	if s.IsNone() {
		return -1, false
	}
	return int(s), true
}

// LineReader is the input side of the menu. *bufio.Reader satisfies it.
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// flusher is implemented by buffered writers such as *bufio.Writer
type flusher interface {
	Flush() error
}

// Menu renders options and reads the user's choice
type Menu struct {
	// Color highlights indices and prompts with ANSI codes
	Color bool

	// OnInvalid is called with every rejected input line (nil = ignored)
	OnInvalid func(line string)
}

// Select runs a plain-text Menu. See SelectWithMenu.
func Select[T any](options []T, in LineReader, out io.Writer) (Selection, error) {
	return SelectWithMenu(&Menu{}, options, in, out)
}

// SelectWithMenu prompts for one of options using m's settings.
//
// With no options it returns None and with one option it returns 0; neither
// case touches in or out. Otherwise every option is written once as
// "<index>: <text>", followed by a prompt, and lines are read until one is
// either a valid index or starts with CancelSentinel. Invalid lines are
// answered with a re-prompt, without limit. Read and write errors abort.
func SelectWithMenu[T any](m *Menu, options []T, in LineReader, out io.Writer) (Selection, error) {
	switch len(options) {
	case 0:
		return None, nil
	case 1:
		return 0, nil
	}

	maxIndex := len(options) - 1

	for i, option := range options {
		if _, err := fmt.Fprintf(out, "%s: %v\n", m.index(i), option); err != nil {
			return None, fmt.Errorf("failed to write option %d: %w", i, err)
		}
	}

	if err := m.prompt(out, fmt.Sprintf("Please select an option (0 - %d): ", maxIndex)); err != nil {
		return None, err
	}

	for {
		line, err := readLine(in)
		if err != nil {
			return None, err
		}

		if len(line) > 0 && line[0] == CancelSentinel {
			return None, nil
		}

		if choice, ok := parseChoice(line, len(options)); ok {
			return Selection(choice), nil
		}

		if m.OnInvalid != nil {
			m.OnInvalid(line)
		}

		if err := m.prompt(out, fmt.Sprintf("Please enter only a number from 0 to %d: ", maxIndex)); err != nil {
			return None, err
		}
	}
}

// index formats an option number
func (m *Menu) index(i int) string {
	return m.paint(color.FgYellow, strconv.Itoa(i))
}

// paint colors s when m.Color is set, regardless of color.NoColor
func (m *Menu) paint(attr color.Attribute, s string) string {
	if !m.Color {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

// prompt writes text and flushes so it is visible before blocking on input
func (m *Menu) prompt(out io.Writer, text string) error {
	if _, err := io.WriteString(out, m.paint(color.FgCyan, text)); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	if f, ok := out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("failed to flush prompt: %w", err)
		}
	}
	return nil
}

// readLine returns the next line without its line ending.
// A final line with no newline is still returned; EOF before any data is an error.
func readLine(in LineReader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read selection: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("failed to read selection: %w", err)
	}
	return trimLineEnding(line), nil
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// parseChoice accepts only a plain base-10 index below count
func parseChoice(line string, count int) (int, bool) {
	n, err := strconv.ParseUint(line, 10, 64)
	if err != nil || n >= uint64(count) {
		return 0, false
	}
	return int(n), true
}
