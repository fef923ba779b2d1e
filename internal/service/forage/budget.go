package forage

import (
	"math"

	"github.com/pasturelab/grazeplan/internal/domain/models"
)

// ComputeBudget derives the forage budget for a herd across a paddock set
// over the planning horizon. It never fails: malformed numeric input is
// sanitized at entry, an empty paddock set or a zero-demand herd simply
// yields zero aggregates.
func ComputeBudget(herd models.Herd, paddocks []models.Paddock, horizonDays int) models.BudgetSummary {
	if horizonDays < 0 {
		horizonDays = 0
	}

	demand := DailyDemandLb(herd)
	summary := models.BudgetSummary{
		DailyDemandLb: demand,
		HorizonDays:   horizonDays,
		PerPaddock:    make([]models.PaddockBudget, 0, len(paddocks)),
	}

	var growthRateSum float64
	var growthPerDayLb float64

	for _, raw := range paddocks {
		p := raw.Sanitized()
		budget := paddockBudget(p, demand)
		summary.PerPaddock = append(summary.PerPaddock, budget)

		summary.TotalDailySupplyLb += budget.DailySupplyLb
		summary.TotalDaysOnAllPaddocks += budget.DaysOn
		growthRateSum += p.GrowthLbPerAcrePerDay
		growthPerDayLb += p.GrowthLbPerAcrePerDay * p.Acres
	}

	if n := len(paddocks); n > 0 {
		// Simple mean of per-paddock growth rates, not acreage-weighted.
		summary.AverageGrowthLbPerAcrePerDay = growthRateSum / float64(n)
	}

	summary.GrowthOverHorizonLb = growthPerDayLb * float64(horizonDays)
	summary.TotalAvailableDmLb = summary.TotalDailySupplyLb + summary.GrowthOverHorizonLb

	if demand > 0 {
		summary.CoverageDays = summary.TotalAvailableDmLb / demand
	}
	summary.DeficitLb = math.Max(0, float64(horizonDays)*demand-summary.TotalAvailableDmLb)

	return summary
}

// paddockBudget applies the per-paddock formulas. A paddock at or below its
// residual target contributes zero grazeable forage, never negative supply.
func paddockBudget(p models.Paddock, dailyDemandLb float64) models.PaddockBudget {
	grazeable := math.Max(p.StandingDmLbPerAcre-p.TargetResidualLbPerAcre, 0) * (p.UtilizationPct / 100)
	supply := grazeable * p.Acres

	var daysOn float64
	if dailyDemandLb > 0 {
		daysOn = supply / dailyDemandLb
	}

	return models.PaddockBudget{
		PaddockID:             p.ID,
		PaddockName:           p.Name,
		Acres:                 p.Acres,
		GrazeableDmLbPerAcre:  grazeable,
		DailySupplyLb:         supply,
		DaysOn:                daysOn,
		GrowthLbPerAcrePerDay: p.GrowthLbPerAcrePerDay,
	}
}
