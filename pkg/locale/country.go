package locale

import (
	"strings"
)

const (
	DefaultTimezone = "UTC"
)

type Country struct {
	Code            string   // ISO 3166-1 alpha-2 country code (e.g., "US", "IL")
	Name            string   // Human-readable country name
	PhonePrefixes   []string // Valid phone number prefixes (e.g., ["+1", "1"])
	DefaultTimezone string   // IANA timezone identifier
}

var (
	Countries = map[string]Country{
		"US": {
			Code:            "US",
			Name:            "United States",
			PhonePrefixes:   []string{"+1", "1"},
			DefaultTimezone: "America/Los_Angeles",
		},
		"IL": {
			Code:            "IL",
			Name:            "Israel",
			PhonePrefixes:   []string{"+972", "972"},
			DefaultTimezone: "Asia/Jerusalem",
		},
	}

	TimeZoneTags = map[string][]string{
		"US": {"America/New_York", "America/Chicago", "America/Denver", "America/Los_Angeles", "US/Eastern", "US/Pacific"},
		"IL": {"Asia/Jerusalem", "Israel", "Asia/Tel_Aviv"},
	}
)

func DetectRegion(tz string) string {
	for region, zones := range TimeZoneTags {
		for _, z := range zones {
			if strings.EqualFold(tz, z) {
				return region
			}
		}
	}
	return "US"
}
