package services

import "math"

// Round2 rounds a monetary value to two decimal places. All derived amounts
// (totals, change) go through this before leaving the service layer.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
