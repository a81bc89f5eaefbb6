package resolver

import "testing"

func TestFormatResponse_NoMatches(t *testing.T) {
	got := FormatResponse(nil)
	want := "No, there is no parking available at that time and location."
	if got != want {
		t.Errorf("FormatResponse(nil) = %q, want %q", got, want)
	}
}

func TestFormatResponse_SingleMatch(t *testing.T) {
	matches := []Match{
		{FullAddress: "1 Main St, Springfield, CA 90210", HourlyRate: 5},
	}

	got := FormatResponse(matches)
	want := "Yes, there is parking available at 1 Main St, Springfield, CA 90210 for $5.00 per hour."
	if got != want {
		t.Errorf("FormatResponse = %q, want %q", got, want)
	}
}

func TestFormatResponse_MultipleMatches(t *testing.T) {
	matches := []Match{
		{FullAddress: "1 Main St, Springfield, CA 90210", HourlyRate: 5},
		{FullAddress: "1720 Market Street, San Francisco, CA 94102", HourlyRate: 9.5},
		{FullAddress: "9 Elm Ave, Portland, OR 97201", HourlyRate: 3.75},
	}

	got := FormatResponse(matches)
	want := "Yes, there are several parking spaces available:\n" +
		"1. 1 Main St, Springfield, CA 90210 for $5.00 per hour\n" +
		"2. 1720 Market Street, San Francisco, CA 94102 for $9.50 per hour\n" +
		"3. 9 Elm Ave, Portland, OR 97201 for $3.75 per hour"
	if got != want {
		t.Errorf("FormatResponse = %q, want %q", got, want)
	}
}

func TestFormatResponse_OrderFollowsMatches(t *testing.T) {
	matches := []Match{
		{FullAddress: "B", HourlyRate: 2},
		{FullAddress: "A", HourlyRate: 1},
	}

	got := FormatResponse(matches)
	want := "Yes, there are several parking spaces available:\n" +
		"1. B for $2.00 per hour\n" +
		"2. A for $1.00 per hour"
	if got != want {
		t.Errorf("FormatResponse = %q, want %q", got, want)
	}
}
