package sanitizer

import (
	"strings"
	"unicode"
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeStreet(street string) string {
	return TrimAndNormalize(street)
}

func NormalizeCity(city string) string {
	return TrimAndNormalize(city)
}

func NormalizeRegion(region string) string {
	return TrimAndNormalize(region)
}

// NormalizePostalCode strips interior whitespace entirely; postal codes are
// compared by plain containment, so "941 02" and "94102" must collapse to
// the same value.
func NormalizePostalCode(code string) string {
	var result strings.Builder
	for _, r := range code {
		if !unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
