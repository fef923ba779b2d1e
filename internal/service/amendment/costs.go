package amendment

import (
	"github.com/shopspring/decimal"

	"github.com/pasturelab/grazeplan/internal/domain/models"
)

// ComputePaddockCost projects amendment spend for one paddock from its
// per-acre rates and unit prices. Arithmetic is exact decimal; no rounding is
// applied here.
func ComputePaddockCost(paddock models.Paddock) models.PaddockCost {
	p := paddock.Sanitized()
	acres := decimal.NewFromFloat(p.Acres)

	seed := decimal.NewFromFloat(p.SeedRateLbPerAcre).
		Mul(decimal.NewFromFloat(p.SeedPricePerLb)).
		Mul(acres)

	fertilizerPerAcre := decimal.NewFromFloat(p.NRateLbPerAcre).Mul(decimal.NewFromFloat(p.NCostPerLb)).
		Add(decimal.NewFromFloat(p.PRateLbPerAcre).Mul(decimal.NewFromFloat(p.PCostPerLb))).
		Add(decimal.NewFromFloat(p.KRateLbPerAcre).Mul(decimal.NewFromFloat(p.KCostPerLb)))
	fertilizer := fertilizerPerAcre.Mul(acres)

	lime := decimal.NewFromFloat(p.LimeRateTonsPerAcre).
		Mul(decimal.NewFromFloat(p.LimeCostPerTon)).
		Mul(acres)

	return models.PaddockCost{
		PaddockID:      p.ID,
		PaddockName:    p.Name,
		SeedCost:       seed,
		FertilizerCost: fertilizer,
		LimeCost:       lime,
		Total:          seed.Add(fertilizer).Add(lime),
	}
}

// ComputeProjectTotals sums per-paddock costs across the project. Each
// paddock's rates affect only its own line; the totals are the plain sum.
func ComputeProjectTotals(paddocks []models.Paddock) models.ProjectTotals {
	var totals models.ProjectTotals
	for _, p := range paddocks {
		cost := ComputePaddockCost(p)
		totals.Seed = totals.Seed.Add(cost.SeedCost)
		totals.Fertilizer = totals.Fertilizer.Add(cost.FertilizerCost)
		totals.Lime = totals.Lime.Add(cost.LimeCost)
		totals.Total = totals.Total.Add(cost.Total)
	}
	return totals
}
