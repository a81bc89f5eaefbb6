package resolver

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"driveway/pkg/config"
)

// Anchor keywords are scanned in priority order and only the first
// occurrence of the first matching anchor is used. This is first-match, not
// best-match: "at" inside an unrelated word can win over a later, more
// specific anchor. Downstream behavior depends on that ordering, so the
// lists must not be reordered or deduplicated.
var (
	locationAnchors = []string{"near", "around", "at", "in", "address"}
	timeAnchors     = []string{"at", "between", "from", "to"}
)

var (
	datePattern      = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	timeTokenPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)
)

// ExtractLocation pulls a single-token location guess out of the query. The
// text after the first anchor occurrence is trimmed and its first
// whitespace-delimited token returned. Queries with no usable anchor fall
// back to the default token.
func ExtractLocation(query string) string {
	lower := strings.ToLower(query)

	for _, anchor := range locationAnchors {
		idx := strings.Index(lower, anchor)
		if idx == -1 {
			continue
		}

		rest := strings.TrimSpace(query[idx+len(anchor):])
		fields := strings.Fields(rest)
		if len(fields) > 0 {
			return fields[0]
		}
	}

	return config.DefaultLocationToken
}

// ExtractDate resolves the query's target calendar date relative to now.
// "tomorrow" and "today" keywords win over an explicit MM/DD/YYYY pattern;
// with neither present the date defaults to today. The returned value is
// midnight of the target date in now's location.
func ExtractDate(query string, now time.Time) time.Time {
	lower := strings.ToLower(query)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if strings.Contains(lower, "tomorrow") {
		return today.AddDate(0, 0, 1)
	}
	if strings.Contains(lower, "today") {
		return today
	}

	if m := datePattern.FindStringSubmatch(query); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		// time.Date normalizes out-of-range components the same way the
		// query author's calendar would not; literal parse, no validation.
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	}

	return today
}

// ExtractTime finds an explicit time window in the query. The text after the
// first time anchor is scanned for time tokens; one token yields a window of
// that time plus the default span, two or more yield (first, second). No
// anchor or no tokens yields (nil, nil), which callers treat as "all day".
func ExtractTime(query string) (*TimeOfDay, *TimeOfDay) {
	lower := strings.ToLower(query)

	rest := ""
	found := false
	for _, anchor := range timeAnchors {
		idx := strings.Index(lower, anchor)
		if idx == -1 {
			continue
		}
		rest = query[idx+len(anchor):]
		found = true
		break
	}
	if !found {
		return nil, nil
	}

	tokens := timeTokenPattern.FindAllStringSubmatch(rest, -1)
	if len(tokens) == 0 {
		return nil, nil
	}

	start := parseTimeToken(tokens[0])
	if len(tokens) == 1 {
		end := TimeOfDay{
			Hour:   start.Hour + int(config.DefaultQuerySpan.Hours()),
			Minute: start.Minute,
		}
		return &start, &end
	}

	end := parseTimeToken(tokens[1])
	return &start, &end
}

// parseTimeToken converts one regex match into a TimeOfDay. An am/pm suffix
// selects 12-hour interpretation (12am is midnight, pm adds 12 to hours
// 1-11); otherwise the hour is read as 24-hour. Out-of-range hours and
// minutes are clamped to 0, never rejected.
func parseTimeToken(token []string) TimeOfDay {
	hour, _ := strconv.Atoi(token[1])
	minute := 0
	if token[2] != "" {
		minute, _ = strconv.Atoi(token[2])
	}

	switch strings.ToLower(token[3]) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour >= 1 && hour <= 11 {
			hour += 12
		}
	}

	if hour < 0 || hour > 23 {
		hour = 0
	}
	if minute < 0 || minute > 59 {
		minute = 0
	}

	return TimeOfDay{Hour: hour, Minute: minute}
}
