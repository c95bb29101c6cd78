// Package stats computes the league's derived metrics from raw counters.
// Derived values are never persisted; every view recomputes them here so the
// numbers agree everywhere they appear.
package stats

import "fmt"

// PointsPerThrow returns points/throws, or 0 when the player has no throws.
func PointsPerThrow(points, throws int) float64 {
	if throws <= 0 {
		return 0
	}
	return float64(points) / float64(throws)
}

// CatchPercentage returns catches/(catches+drops) as a percentage, or 0 when
// the player has no catch attempts.
func CatchPercentage(catches, drops int) float64 {
	attempts := catches + drops
	if attempts <= 0 {
		return 0
	}
	return float64(catches) / float64(attempts) * 100
}

// FormatPointsPerThrow renders a points-per-throw value to 3 decimal places.
func FormatPointsPerThrow(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// FormatCatchPercentage renders a catch percentage to 1 decimal place.
func FormatCatchPercentage(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatCount renders a raw counter value.
func FormatCount(v float64) string {
	return fmt.Sprintf("%.0f", v)
}
