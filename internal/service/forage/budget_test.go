package forage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasturelab/grazeplan/internal/domain/models"
)

func testHerd() models.Herd {
	return models.Herd{HeadCount: 60, AvgBodyWeightLb: 1200, IntakePctBodyWeight: 2.6}
}

func testPaddocks() []models.Paddock {
	return []models.Paddock{
		{
			ID:                      "p1",
			Name:                    "North 5",
			Acres:                   5,
			StandingDmLbPerAcre:     2800,
			TargetResidualLbPerAcre: 1200,
			UtilizationPct:          60,
		},
		{
			ID:                      "p2",
			Name:                    "Creek 6",
			Acres:                   6,
			StandingDmLbPerAcre:     2600,
			TargetResidualLbPerAcre: 1200,
			UtilizationPct:          60,
		},
	}
}

func TestComputeBudget_PerPaddock(t *testing.T) {
	summary := ComputeBudget(testHerd(), testPaddocks(), 10)
	require.Len(t, summary.PerPaddock, 2)

	p1 := summary.PerPaddock[0]
	assert.InDelta(t, 960, p1.GrazeableDmLbPerAcre, 1e-9)
	assert.InDelta(t, 4800, p1.DailySupplyLb, 1e-9)
	assert.InDelta(t, 4800.0/1872.0, p1.DaysOn, 1e-9)

	p2 := summary.PerPaddock[1]
	assert.InDelta(t, 840, p2.GrazeableDmLbPerAcre, 1e-9)
	assert.InDelta(t, 5040, p2.DailySupplyLb, 1e-9)
	assert.InDelta(t, 5040.0/1872.0, p2.DaysOn, 1e-9)
}

func TestComputeBudget_Aggregates(t *testing.T) {
	summary := ComputeBudget(testHerd(), testPaddocks(), 10)

	assert.InDelta(t, 1872, summary.DailyDemandLb, 1e-9)
	assert.InDelta(t, 9840, summary.TotalDailySupplyLb, 1e-9)
	assert.InDelta(t, 9840.0/1872.0, summary.TotalDaysOnAllPaddocks, 1e-9)

	// No regrowth in this scenario: available DM is the standing stock.
	assert.InDelta(t, 9840, summary.TotalAvailableDmLb, 1e-9)
	assert.InDelta(t, 9840.0/1872.0, summary.CoverageDays, 1e-9)
	assert.InDelta(t, 10*1872-9840, summary.DeficitLb, 1e-9)
	assert.True(t, summary.HasDeficit())
}

func TestComputeBudget_HorizonGrowth(t *testing.T) {
	paddocks := testPaddocks()
	paddocks[0].GrowthLbPerAcrePerDay = 40
	paddocks[1].GrowthLbPerAcrePerDay = 50

	summary := ComputeBudget(testHerd(), paddocks, 10)

	// growth = (40*5 + 50*6) * 10
	assert.InDelta(t, 5000, summary.GrowthOverHorizonLb, 1e-9)
	assert.InDelta(t, 14840, summary.TotalAvailableDmLb, 1e-9)
	assert.InDelta(t, 14840.0/1872.0, summary.CoverageDays, 1e-9)
	assert.InDelta(t, 10*1872-14840, summary.DeficitLb, 1e-9)
}

func TestComputeBudget_AverageGrowthIsSimpleMean(t *testing.T) {
	// The aggregate growth figure is deliberately the simple mean of the
	// per-paddock rates. An acreage-weighted mean for these inputs would be
	// close to 20; the simple mean is 30.
	paddocks := []models.Paddock{
		{ID: "small", Acres: 1, GrowthLbPerAcrePerDay: 40},
		{ID: "large", Acres: 100, GrowthLbPerAcrePerDay: 20},
	}

	summary := ComputeBudget(testHerd(), paddocks, 10)
	assert.InDelta(t, 30, summary.AverageGrowthLbPerAcrePerDay, 1e-9)

	weighted := (40.0*1 + 20.0*100) / 101.0
	assert.NotEqual(t, weighted, summary.AverageGrowthLbPerAcrePerDay)
}

func TestComputeBudget_EdgeCases(t *testing.T) {
	t.Run("no paddocks yields zero aggregates", func(t *testing.T) {
		summary := ComputeBudget(testHerd(), nil, 30)
		assert.Empty(t, summary.PerPaddock)
		assert.Zero(t, summary.TotalDailySupplyLb)
		assert.Zero(t, summary.TotalDaysOnAllPaddocks)
		assert.Zero(t, summary.AverageGrowthLbPerAcrePerDay)
		assert.Zero(t, summary.CoverageDays)
	})

	t.Run("zero demand yields zero days-on and coverage", func(t *testing.T) {
		summary := ComputeBudget(models.Herd{}, testPaddocks(), 30)
		assert.Zero(t, summary.DailyDemandLb)
		for _, p := range summary.PerPaddock {
			assert.Zero(t, p.DaysOn)
		}
		assert.Zero(t, summary.CoverageDays)
		assert.Zero(t, summary.DeficitLb)
	})

	t.Run("standing at or below residual clamps to zero supply", func(t *testing.T) {
		paddocks := []models.Paddock{{
			ID:                      "bare",
			Acres:                   8,
			StandingDmLbPerAcre:     900,
			TargetResidualLbPerAcre: 1200,
			UtilizationPct:          60,
		}}

		summary := ComputeBudget(testHerd(), paddocks, 30)
		require.Len(t, summary.PerPaddock, 1)
		assert.Zero(t, summary.PerPaddock[0].GrazeableDmLbPerAcre)
		assert.Zero(t, summary.PerPaddock[0].DailySupplyLb)
	})

	t.Run("zero utilization forces zero grazeable forage", func(t *testing.T) {
		paddocks := testPaddocks()
		paddocks[0].UtilizationPct = 0

		summary := ComputeBudget(testHerd(), paddocks, 30)
		assert.Zero(t, summary.PerPaddock[0].GrazeableDmLbPerAcre)
	})

	t.Run("missing acreage contributes nothing", func(t *testing.T) {
		paddocks := testPaddocks()
		paddocks[1].Acres = 0

		summary := ComputeBudget(testHerd(), paddocks, 30)
		assert.Zero(t, summary.PerPaddock[1].DailySupplyLb)
		assert.Zero(t, summary.PerPaddock[1].DaysOn)
	})

	t.Run("negative horizon treated as zero", func(t *testing.T) {
		summary := ComputeBudget(testHerd(), testPaddocks(), -5)
		assert.Zero(t, summary.GrowthOverHorizonLb)
		assert.Zero(t, summary.DeficitLb)
	})
}

func TestComputeBudget_SupplyNeverNegative(t *testing.T) {
	paddocks := []models.Paddock{
		{ID: "a", Acres: -3, StandingDmLbPerAcre: -100, TargetResidualLbPerAcre: 500, UtilizationPct: 250},
		{ID: "b", Acres: 2, StandingDmLbPerAcre: 1000, TargetResidualLbPerAcre: 3000, UtilizationPct: 80},
	}

	summary := ComputeBudget(testHerd(), paddocks, 14)
	for _, p := range summary.PerPaddock {
		assert.GreaterOrEqual(t, p.GrazeableDmLbPerAcre, 0.0)
		assert.GreaterOrEqual(t, p.DailySupplyLb, 0.0)
		assert.GreaterOrEqual(t, p.DaysOn, 0.0)
	}
}
