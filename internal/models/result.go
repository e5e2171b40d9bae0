package models

import "time"

// Selection outcome constants
const (
	OutcomeSelected  = "SELECTED"  // User picked an option
	OutcomeCancelled = "CANCELLED" // User entered the cancel sentinel
)

// SearchResult summarizes one findfile run
type SearchResult struct {
	Root     string        // Directory the search started from
	Name     string        // Name that was matched against trailing path components
	Matches  []string      // Matched paths in traversal order
	Duration time.Duration // Time taken to walk the tree
}

// SelectionResult summarizes one selectfile run
type SelectionResult struct {
	Options  []string      // Options offered, in display order
	Index    int           // Selected index, -1 when nothing was selected
	Outcome  string        // One of the Outcome* constants
	Duration time.Duration // Time spent waiting for the user
}

// Selected returns the chosen option text and true, or "" and false
func (r SelectionResult) Selected() (string, bool) {
	if r.Outcome != OutcomeSelected || r.Index < 0 || r.Index >= len(r.Options) {
		return "", false
	}
	return r.Options[r.Index], true
}
