package resolver

import (
	"strings"
	"time"

	"driveway/pkg/model"
)

// AvailableListings filters a listings snapshot down to those that can host
// the requested window. Three filters apply in sequence: location substring,
// weekday membership, and full time containment (partial overlap never
// matches). Input order is preserved and the snapshot is not mutated.
func AvailableListings(listings []*model.Listing, locationToken string, windowStart, windowEnd time.Time) []Match {
	var matches []Match

	weekday := int(windowStart.Weekday())

	for _, l := range listings {
		if !matchesLocation(l, locationToken) {
			continue
		}

		if !l.AvailableOn(weekday) {
			continue
		}

		if !containsWindow(l, windowStart, windowEnd) {
			continue
		}

		matches = append(matches, Match{
			Listing:     l,
			FullAddress: l.FullAddress(),
			HourlyRate:  l.HourlyRate,
		})
	}

	return matches
}

// matchesLocation checks the token against each address component. Street,
// city, and region compare case-insensitively; postal codes are digits, so
// a plain substring check suffices.
func matchesLocation(l *model.Listing, locationToken string) bool {
	token := strings.ToLower(locationToken)

	if strings.Contains(strings.ToLower(l.Street), token) {
		return true
	}
	if strings.Contains(strings.ToLower(l.City), token) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Region), token) {
		return true
	}
	return strings.Contains(l.PostalCode, locationToken)
}

// containsWindow reports whether the listing's daily open/close window,
// mapped onto windowStart's date, fully contains [windowStart, windowEnd].
// Listings with an unparseable open or close time are skipped rather than
// treated as always open.
func containsWindow(l *model.Listing, windowStart, windowEnd time.Time) bool {
	open, err := time.Parse("15:04", l.OpenTime)
	if err != nil {
		return false
	}
	close, err := time.Parse("15:04", l.CloseTime)
	if err != nil {
		return false
	}

	openAt := time.Date(windowStart.Year(), windowStart.Month(), windowStart.Day(),
		open.Hour(), open.Minute(), 0, 0, windowStart.Location())
	closeAt := time.Date(windowStart.Year(), windowStart.Month(), windowStart.Day(),
		close.Hour(), close.Minute(), 0, 0, windowStart.Location())

	return !openAt.After(windowStart) && !closeAt.Before(windowEnd)
}
