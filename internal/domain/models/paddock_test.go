package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddockSanitized(t *testing.T) {
	t.Run("negatives become zero", func(t *testing.T) {
		p := Paddock{
			Acres:                   -5,
			StandingDmLbPerAcre:     -2800,
			TargetResidualLbPerAcre: -1200,
			GrowthLbPerAcrePerDay:   -40,
			SeedPricePerLb:          -3.5,
		}.Sanitized()

		assert.Zero(t, p.Acres)
		assert.Zero(t, p.StandingDmLbPerAcre)
		assert.Zero(t, p.TargetResidualLbPerAcre)
		assert.Zero(t, p.GrowthLbPerAcrePerDay)
		assert.Zero(t, p.SeedPricePerLb)
	})

	t.Run("non-finite values become zero", func(t *testing.T) {
		p := Paddock{
			StandingDmLbPerAcre: math.NaN(),
			Acres:               math.Inf(1),
		}.Sanitized()

		assert.Zero(t, p.StandingDmLbPerAcre)
		assert.Zero(t, p.Acres)
	})

	t.Run("utilization clamps to 0..100", func(t *testing.T) {
		assert.Equal(t, 100.0, Paddock{UtilizationPct: 250}.Sanitized().UtilizationPct)
		assert.Equal(t, 0.0, Paddock{UtilizationPct: -10}.Sanitized().UtilizationPct)
		assert.Equal(t, 60.0, Paddock{UtilizationPct: 60}.Sanitized().UtilizationPct)
	})

	t.Run("valid values pass through", func(t *testing.T) {
		p := Paddock{ID: "p1", Name: "North 5", Acres: 5, StandingDmLbPerAcre: 2800}
		assert.Equal(t, p, p.Sanitized())
	})
}

func TestHerdSanitized(t *testing.T) {
	h := Herd{HeadCount: -3, AvgBodyWeightLb: math.NaN(), IntakePctBodyWeight: -2.6}.Sanitized()
	assert.Zero(t, h.HeadCount)
	assert.Zero(t, h.AvgBodyWeightLb)
	assert.Zero(t, h.IntakePctBodyWeight)

	valid := Herd{HeadCount: 60, AvgBodyWeightLb: 1200, IntakePctBodyWeight: 2.6}
	assert.Equal(t, valid, valid.Sanitized())
}
