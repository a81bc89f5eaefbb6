package sanitizer

import "sort"

// NormalizeWeekdays deduplicates weekday indices, drops values outside
// 0=Sunday..6=Saturday and returns them sorted ascending.
func NormalizeWeekdays(days []int) []int {
	if len(days) == 0 {
		return []int{}
	}

	seen := make(map[int]bool)
	result := make([]int, 0, len(days))

	for _, d := range days {
		if d < 0 || d > 6 {
			continue
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		result = append(result, d)
	}

	sort.Ints(result)
	return result
}
