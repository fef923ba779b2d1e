package models

// Herd holds the grazing herd parameters entered by the user for a planning
// session. Herd values are never persisted; they are re-entered or defaulted
// each session.
type Herd struct {
	HeadCount           int     `json:"head_count"`
	AvgBodyWeightLb     float64 `json:"avg_body_weight_lb"`
	IntakePctBodyWeight float64 `json:"intake_pct_body_weight"`
}

// Sanitized returns a copy with every field coerced into its valid range.
// Negative or non-finite values become 0. This is the single sanitization
// boundary for herd input; downstream formulas assume clean values.
func (h Herd) Sanitized() Herd {
	if h.HeadCount < 0 {
		h.HeadCount = 0
	}
	h.AvgBodyWeightLb = nonNegative(h.AvgBodyWeightLb)
	h.IntakePctBodyWeight = nonNegative(h.IntakePctBodyWeight)
	return h
}
