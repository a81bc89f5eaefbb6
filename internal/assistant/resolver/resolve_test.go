package resolver

import (
	"testing"
	"time"

	"driveway/pkg/model"
)

// Tuesday, March 3rd 2026, noon UTC.
var resolveNow = time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)

func TestResolve_SingleMatchEndToEnd(t *testing.T) {
	listings := []*model.Listing{marketStreetListing()}

	res := Resolve("is there parking near market tomorrow at 10am", resolveNow, listings)

	if res.Location != "market" {
		t.Errorf("expected location %q, got %q", "market", res.Location)
	}

	expectedDate := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	if !res.Date.Equal(expectedDate) {
		t.Errorf("expected date %v, got %v", expectedDate, res.Date)
	}
	if !res.WindowStart.Equal(expectedDate.Add(10 * time.Hour)) {
		t.Errorf("expected window start 10:00, got %v", res.WindowStart)
	}
	if !res.WindowEnd.Equal(expectedDate.Add(12 * time.Hour)) {
		t.Errorf("expected window end 12:00, got %v", res.WindowEnd)
	}

	if len(res.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(res.Matches))
	}

	want := "Yes, there is parking available at 1720 Market Street, San Francisco, CA 94102 for $9.50 per hour."
	if res.Answer != want {
		t.Errorf("answer = %q, want %q", res.Answer, want)
	}
}

func TestResolve_BeforeOpeningHours(t *testing.T) {
	listings := []*model.Listing{marketStreetListing()}

	res := Resolve("parking near market at 6am", resolveNow, listings)

	if len(res.Matches) != 0 {
		t.Fatalf("expected no matches before opening, got %d", len(res.Matches))
	}
	want := "No, there is no parking available at that time and location."
	if res.Answer != want {
		t.Errorf("answer = %q, want %q", res.Answer, want)
	}
}

func TestResolve_NoTimeMeansFullDayWindow(t *testing.T) {
	res := Resolve("is there parking near market tomorrow", resolveNow, nil)

	expectedDate := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	if !res.WindowStart.Equal(expectedDate) {
		t.Errorf("expected window start at midnight, got %v", res.WindowStart)
	}
	expectedEnd := time.Date(2026, 3, 4, 23, 59, 59, 0, time.UTC)
	if !res.WindowEnd.Equal(expectedEnd) {
		t.Errorf("expected window end 23:59:59, got %v", res.WindowEnd)
	}
}

func TestResolve_FullDayWindowExcludesPartialDayListings(t *testing.T) {
	// A 07:00-22:00 listing cannot contain a full-day window.
	listings := []*model.Listing{marketStreetListing()}

	res := Resolve("is there parking near market tomorrow", resolveNow, listings)

	if len(res.Matches) != 0 {
		t.Errorf("expected no matches for full-day window, got %d", len(res.Matches))
	}
}

func TestResolve_WindowPastMidnightNeverMatches(t *testing.T) {
	// "at 11pm" makes the default span end at 01:00 the next day, so no
	// same-day open/close window can contain it.
	l := marketStreetListing()
	l.OpenTime = "00:00"
	l.CloseTime = "23:59"

	res := Resolve("parking near market at 11pm", resolveNow, []*model.Listing{l})

	if len(res.Matches) != 0 {
		t.Errorf("expected no matches for window crossing midnight, got %d", len(res.Matches))
	}
	if res.WindowEnd.Day() == res.WindowStart.Day() {
		t.Errorf("expected window end on the next day, got start %v end %v", res.WindowStart, res.WindowEnd)
	}
}

func TestResolve_DefaultsWhenQueryIsVague(t *testing.T) {
	res := Resolve("hmm", resolveNow, nil)

	if res.Location != "downtown" {
		t.Errorf("expected default location token, got %q", res.Location)
	}
	expectedDate := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	if !res.Date.Equal(expectedDate) {
		t.Errorf("expected today, got %v", res.Date)
	}
	want := "No, there is no parking available at that time and location."
	if res.Answer != want {
		t.Errorf("answer = %q, want %q", res.Answer, want)
	}
}

func TestResolve_MultipleMatchesListedInOrder(t *testing.T) {
	cheap := marketStreetListing()
	cheap.ID = "listing-2"
	cheap.Street = "1800 Market Street"
	cheap.HourlyRate = 4.25

	res := Resolve("parking near market tomorrow at 10am", resolveNow, []*model.Listing{marketStreetListing(), cheap})

	if len(res.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(res.Matches))
	}
	want := "Yes, there are several parking spaces available:\n" +
		"1. 1720 Market Street, San Francisco, CA 94102 for $9.50 per hour\n" +
		"2. 1800 Market Street, San Francisco, CA 94102 for $4.25 per hour"
	if res.Answer != want {
		t.Errorf("answer = %q, want %q", res.Answer, want)
	}
}

func TestResolve_DoesNotMutateSnapshot(t *testing.T) {
	l := marketStreetListing()
	original := *l

	Resolve("parking near market tomorrow at 10am", resolveNow, []*model.Listing{l})

	if l.Street != original.Street || l.HourlyRate != original.HourlyRate || l.OpenTime != original.OpenTime {
		t.Errorf("listing mutated during resolve: %+v", l)
	}
}
