package models

import "math"

// nonNegative coerces invalid planning input to zero contribution rather than
// rejecting it: negatives, NaN and infinities all become 0.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// clampPercent bounds a percentage to [0,100], treating invalid values as 0.
func clampPercent(v float64) float64 {
	v = nonNegative(v)
	if v > 100 {
		return 100
	}
	return v
}
