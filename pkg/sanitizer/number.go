package sanitizer

// ClampHourlyRate keeps owner-supplied rates inside [0, maxRate].
func ClampHourlyRate(rate float64, maxRate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > maxRate {
		return maxRate
	}
	return rate
}
