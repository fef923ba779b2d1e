package rotation

import "github.com/pasturelab/grazeplan/internal/domain/models"

// AllocateGrowth answers a different question than BuildMovePlan: not "when
// does the herd move" but "how many grazing days does each paddock
// contribute". Horizon-wide regrowth is partitioned across paddocks in
// proportion to each one's share of total takeable dry matter, and each
// paddock's stock plus growth share is converted to days at the herd's daily
// demand.
//
// The allocation is a true partition: the growth shares always sum to the
// total horizon growth. When no paddock has takeable dry matter the growth is
// split evenly so no mass is dropped.
func AllocateGrowth(budgets []models.PaddockBudget, dailyDemandLb float64, horizonDays int) []models.GrowthAllocation {
	allocations := make([]models.GrowthAllocation, 0, len(budgets))
	if len(budgets) == 0 {
		return allocations
	}
	if horizonDays < 0 {
		horizonDays = 0
	}

	var totalTakeableLb float64
	var growthPerDayLb float64
	for _, b := range budgets {
		totalTakeableLb += b.DailySupplyLb
		growthPerDayLb += b.GrowthLbPerAcrePerDay * b.Acres
	}
	totalGrowthLb := growthPerDayLb * float64(horizonDays)

	for _, b := range budgets {
		share := 1 / float64(len(budgets))
		if totalTakeableLb > 0 {
			share = b.DailySupplyLb / totalTakeableLb
		}
		growthShare := totalGrowthLb * share

		var days float64
		if dailyDemandLb > 0 {
			days = (b.DailySupplyLb + growthShare) / dailyDemandLb
		}

		allocations = append(allocations, models.GrowthAllocation{
			PaddockID:       b.PaddockID,
			PaddockName:     b.PaddockName,
			TakeableDmLb:    b.DailySupplyLb,
			GrowthShareLb:   growthShare,
			ContributedDays: days,
		})
	}

	return allocations
}
