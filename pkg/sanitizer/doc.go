// Package sanitizer provides input normalization functions for listing data.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. Functions handle invalid input gracefully,
// typically by returning empty strings or empty slices rather than errors.
//
// Normalization includes:
//   - Phone numbers: convert to E.164 format (+[country][number])
//   - URLs: enforce HTTPS, lowercase domains, preserve paths
//   - Strings: collapse whitespace, trim leading/trailing spaces
//   - Weekday sets: deduplicate, drop out-of-range indices, sort ascending
//   - Numbers: clamp to valid ranges
package sanitizer
