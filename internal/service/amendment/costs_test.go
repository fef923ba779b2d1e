package amendment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pasturelab/grazeplan/internal/domain/models"
)

func renovationPaddock() models.Paddock {
	return models.Paddock{
		ID:    "p1",
		Name:  "North 5",
		Acres: 5,

		SeedRateLbPerAcre: 20,
		SeedPricePerLb:    3.5,

		NRateLbPerAcre: 60,
		NCostPerLb:     0.8,
		PRateLbPerAcre: 30,
		PCostPerLb:     0.9,
		KRateLbPerAcre: 40,
		KCostPerLb:     0.6,

		LimeRateTonsPerAcre: 1.5,
		LimeCostPerTon:      45,
	}
}

func TestComputePaddockCost(t *testing.T) {
	cost := ComputePaddockCost(renovationPaddock())

	// seed: 20 * 3.5 * 5 = 350
	assert.True(t, cost.SeedCost.Equal(decimal.NewFromInt(350)), "seed cost %s", cost.SeedCost)

	// fertilizer: (60*0.8 + 30*0.9 + 40*0.6) * 5 = 495
	assert.True(t, cost.FertilizerCost.Equal(decimal.NewFromInt(495)), "fertilizer cost %s", cost.FertilizerCost)

	// lime: 1.5 * 45 * 5 = 337.5
	assert.True(t, cost.LimeCost.Equal(decimal.NewFromFloat(337.5)), "lime cost %s", cost.LimeCost)

	assert.True(t, cost.Total.Equal(decimal.NewFromFloat(1182.5)), "total %s", cost.Total)
}

func TestComputePaddockCost_DefaultsToZero(t *testing.T) {
	cost := ComputePaddockCost(models.Paddock{ID: "bare", Acres: 12})
	assert.True(t, cost.Total.IsZero())

	// Negative rates are planning noise, not refunds.
	cost = ComputePaddockCost(models.Paddock{ID: "odd", Acres: 12, SeedRateLbPerAcre: -10, SeedPricePerLb: 4})
	assert.True(t, cost.SeedCost.IsZero())
}

func TestComputeProjectTotals(t *testing.T) {
	second := renovationPaddock()
	second.ID = "p2"
	second.Acres = 6
	paddocks := []models.Paddock{renovationPaddock(), second}

	totals := ComputeProjectTotals(paddocks)

	var sum decimal.Decimal
	for _, p := range paddocks {
		sum = sum.Add(ComputePaddockCost(p).Total)
	}
	assert.True(t, totals.Total.Equal(sum), "project total %s != %s", totals.Total, sum)
	assert.True(t, totals.Total.Equal(totals.Seed.Add(totals.Fertilizer).Add(totals.Lime)))
}

func TestComputeProjectTotals_NoLeakageBetweenPaddocks(t *testing.T) {
	first := renovationPaddock()
	second := renovationPaddock()
	second.ID = "p2"

	before := ComputePaddockCost(second)

	// Editing the first paddock's rates must not move the second's cost.
	first.SeedRateLbPerAcre = 80
	after := ComputePaddockCost(second)
	assert.True(t, before.Total.Equal(after.Total))

	totals := ComputeProjectTotals([]models.Paddock{first, second})
	assert.True(t, totals.Total.Equal(ComputePaddockCost(first).Total.Add(before.Total)))
}

func TestComputeProjectTotals_Empty(t *testing.T) {
	totals := ComputeProjectTotals(nil)
	assert.True(t, totals.Total.IsZero())
	assert.True(t, totals.Seed.IsZero())
	assert.True(t, totals.Fertilizer.IsZero())
	assert.True(t, totals.Lime.IsZero())
}
