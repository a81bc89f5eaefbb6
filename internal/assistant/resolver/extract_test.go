package resolver

import (
	"testing"
	"time"
)

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "near anchor takes first token after it",
			query:    "is there parking near downtown tomorrow",
			expected: "downtown",
		},
		{
			name:     "around anchor",
			query:    "anything around Brooklyn?",
			expected: "Brooklyn?",
		},
		{
			name:     "address anchor with postal code",
			query:    "do you have an address 94102 spot",
			expected: "94102",
		},
		{
			name:     "no anchor falls back to default token",
			query:    "is my car safe overnight",
			expected: "downtown",
		},
		{
			name:     "empty query falls back to default token",
			query:    "",
			expected: "downtown",
		},
		{
			name:     "empty rest after anchor continues to the next anchor",
			query:    "is there parking near",
			expected: "g",
		},
		{
			name:     "anchor inside a word still wins",
			query:    "nearby spots on main",
			expected: "by",
		},
		{
			name:     "case insensitive anchor",
			query:    "parking NEAR Market please",
			expected: "Market",
		},
		{
			name:     "original casing of the token is preserved",
			query:    "spot in SoHo today",
			expected: "SoHo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLocation(tt.query)
			if got != tt.expected {
				t.Errorf("ExtractLocation(%q) = %q, want %q", tt.query, got, tt.expected)
			}
		})
	}
}

func TestExtractDate(t *testing.T) {
	// Tuesday, March 3rd 2026, mid-afternoon.
	now := time.Date(2026, 3, 3, 15, 42, 10, 0, time.UTC)
	midnight := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		query    string
		expected time.Time
	}{
		{
			name:     "tomorrow keyword",
			query:    "parking near market tomorrow",
			expected: midnight.AddDate(0, 0, 1),
		},
		{
			name:     "today keyword",
			query:    "parking near market today",
			expected: midnight,
		},
		{
			name:     "tomorrow wins over explicit date",
			query:    "parking tomorrow on 12/25/2026",
			expected: midnight.AddDate(0, 0, 1),
		},
		{
			name:     "explicit MM/DD/YYYY date",
			query:    "parking near market on 12/25/2026",
			expected: time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "single digit month and day",
			query:    "parking on 7/4/2026",
			expected: time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "out of range date normalizes forward",
			query:    "parking on 13/40/2026",
			expected: time.Date(2027, 2, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "no date defaults to today at midnight",
			query:    "parking near market",
			expected: midnight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDate(tt.query, now)
			if !got.Equal(tt.expected) {
				t.Errorf("ExtractDate(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestExtractDate_PreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	now := time.Date(2026, 3, 3, 23, 30, 0, 0, loc)
	got := ExtractDate("parking tomorrow", now)

	expected := time.Date(2026, 3, 4, 0, 0, 0, 0, loc)
	if !got.Equal(expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
	if got.Location() != loc {
		t.Errorf("expected location %v, got %v", loc, got.Location())
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedStart *TimeOfDay
		expectedEnd   *TimeOfDay
	}{
		{
			name:          "no anchor yields nil pair",
			query:         "parking near market 5pm",
			expectedStart: nil,
			expectedEnd:   nil,
		},
		{
			name:          "anchor with no tokens yields nil pair",
			query:         "parking at market street",
			expectedStart: nil,
			expectedEnd:   nil,
		},
		{
			name:          "single pm token gets default span",
			query:         "parking downtown at 2pm",
			expectedStart: &TimeOfDay{Hour: 14},
			expectedEnd:   &TimeOfDay{Hour: 16},
		},
		{
			name:          "single am token",
			query:         "parking downtown at 10am",
			expectedStart: &TimeOfDay{Hour: 10},
			expectedEnd:   &TimeOfDay{Hour: 12},
		},
		{
			name:          "from-to range",
			query:         "parking downtown from 9am to 5pm",
			expectedStart: &TimeOfDay{Hour: 9},
			expectedEnd:   &TimeOfDay{Hour: 17},
		},
		{
			name:          "between range with minutes",
			query:         "spot downtown between 9:30am 11:45am",
			expectedStart: &TimeOfDay{Hour: 9, Minute: 30},
			expectedEnd:   &TimeOfDay{Hour: 11, Minute: 45},
		},
		{
			name:          "24 hour token without suffix",
			query:         "parking downtown at 18:15",
			expectedStart: &TimeOfDay{Hour: 18, Minute: 15},
			expectedEnd:   &TimeOfDay{Hour: 20, Minute: 15},
		},
		{
			name:          "12am is midnight",
			query:         "parking downtown at 12am",
			expectedStart: &TimeOfDay{Hour: 0},
			expectedEnd:   &TimeOfDay{Hour: 2},
		},
		{
			name:          "12pm stays noon",
			query:         "parking downtown at 12pm",
			expectedStart: &TimeOfDay{Hour: 12},
			expectedEnd:   &TimeOfDay{Hour: 14},
		},
		{
			name:          "extra tokens beyond two are ignored",
			query:         "parking downtown from 9am to 5pm or 7pm",
			expectedStart: &TimeOfDay{Hour: 9},
			expectedEnd:   &TimeOfDay{Hour: 17},
		},
		{
			name:          "late single token can push end past midnight",
			query:         "parking downtown at 11pm",
			expectedStart: &TimeOfDay{Hour: 23},
			expectedEnd:   &TimeOfDay{Hour: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ExtractTime(tt.query)

			if (start == nil) != (tt.expectedStart == nil) {
				t.Fatalf("ExtractTime(%q) start = %v, want %v", tt.query, start, tt.expectedStart)
			}
			if (end == nil) != (tt.expectedEnd == nil) {
				t.Fatalf("ExtractTime(%q) end = %v, want %v", tt.query, end, tt.expectedEnd)
			}
			if start != nil && *start != *tt.expectedStart {
				t.Errorf("ExtractTime(%q) start = %+v, want %+v", tt.query, *start, *tt.expectedStart)
			}
			if end != nil && *end != *tt.expectedEnd {
				t.Errorf("ExtractTime(%q) end = %+v, want %+v", tt.query, *end, *tt.expectedEnd)
			}
		})
	}
}

func TestParseTimeToken_Clamping(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected TimeOfDay
	}{
		{
			name:     "minute above 59 clamps to zero",
			query:    "parking at 9:99",
			expected: TimeOfDay{Hour: 9, Minute: 0},
		},
		{
			name:     "hour above 23 clamps to zero",
			query:    "parking at 45:30",
			expected: TimeOfDay{Hour: 0, Minute: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := ExtractTime(tt.query)
			if start == nil {
				t.Fatalf("ExtractTime(%q) returned nil start", tt.query)
			}
			if *start != tt.expected {
				t.Errorf("ExtractTime(%q) start = %+v, want %+v", tt.query, *start, tt.expected)
			}
		})
	}
}
