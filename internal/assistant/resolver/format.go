package resolver

import (
	"fmt"
	"strings"
)

const noResultsAnswer = "No, there is no parking available at that time and location."

// FormatResponse renders a match set as the answer sentence. Output is fully
// determined by the matches and their order; the list is never truncated.
func FormatResponse(matches []Match) string {
	switch len(matches) {
	case 0:
		return noResultsAnswer
	case 1:
		return fmt.Sprintf("Yes, there is parking available at %s for $%.2f per hour.",
			matches[0].FullAddress, matches[0].HourlyRate)
	}

	var b strings.Builder
	b.WriteString("Yes, there are several parking spaces available:\n")
	for i, m := range matches {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%d. %s for $%.2f per hour", i+1, m.FullAddress, m.HourlyRate))
	}
	return b.String()
}
