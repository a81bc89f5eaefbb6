package resolver

import (
	"time"

	"driveway/pkg/model"
)

// Resolve runs the full pipeline over one query against a listings
// snapshot. The three extractors run independently; when no explicit time
// was found the window spans the whole target date (00:00:00-23:59:59).
// Resolve never fails: degraded extraction falls back to defaults and an
// empty match set formats as the no-results answer.
func Resolve(query string, now time.Time, listings []*model.Listing) Resolution {
	location := ExtractLocation(query)
	date := ExtractDate(query, now)
	start, end := ExtractTime(query)

	var windowStart, windowEnd time.Time
	if start != nil && end != nil {
		windowStart = start.On(date)
		windowEnd = end.On(date)
	} else {
		windowStart = date
		windowEnd = time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())
	}

	matches := AvailableListings(listings, location, windowStart, windowEnd)

	return Resolution{
		Location:    location,
		Date:        date,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Matches:     matches,
		Answer:      FormatResponse(matches),
	}
}
