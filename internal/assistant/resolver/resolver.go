// Package resolver turns free-text parking queries into availability answers.
// The pipeline is extract -> match -> format: keyword heuristics pull a
// location token, a date, and a time window out of the raw query, the matcher
// filters a listings snapshot against them, and the formatter renders the
// result as a deterministic sentence. Every step is a pure function over its
// inputs; the listings snapshot is never mutated and nothing is cached
// between calls.
package resolver

import (
	"time"

	"driveway/pkg/model"
)

// TimeOfDay is a wall-clock time with no date attached. Hour is allowed to
// exceed 23 when a default span pushes a window past midnight; On relies on
// time.Date normalization so such windows land on the following day and
// naturally fail same-day containment.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// On anchors the wall-clock time to the given calendar date.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

// Match is a single listing that satisfied every filter, paired with the
// fields the formatter needs.
type Match struct {
	Listing     *model.Listing
	FullAddress string
	HourlyRate  float64
}

// Resolution is the full outcome of resolving one query: the extracted
// entities, the concrete window they produced, the surviving matches, and
// the formatted answer.
type Resolution struct {
	Location    string
	Date        time.Time
	WindowStart time.Time
	WindowEnd   time.Time
	Matches     []Match
	Answer      string
}
