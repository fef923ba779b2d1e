package forage

import "github.com/pasturelab/grazeplan/internal/domain/models"

// DailyDemandLb converts herd size, average body weight and intake percentage
// into the herd's daily dry-matter demand in pounds. Invalid input degrades
// to zero contribution; the result is always finite and non-negative.
func DailyDemandLb(herd models.Herd) float64 {
	h := herd.Sanitized()
	return float64(h.HeadCount) * h.AvgBodyWeightLb * (h.IntakePctBodyWeight / 100)
}
