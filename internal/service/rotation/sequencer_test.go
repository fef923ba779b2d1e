package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasturelab/grazeplan/internal/domain/models"
)

func scenarioBudgets() []models.PaddockBudget {
	// 60 head x 1200 lb x 2.6% intake = 1872 lb/day demand.
	return []models.PaddockBudget{
		{PaddockID: "p1", PaddockName: "North 5", Acres: 5, DailySupplyLb: 4800, DaysOn: 4800.0 / 1872.0},
		{PaddockID: "p2", PaddockName: "Creek 6", Acres: 6, DailySupplyLb: 5040, DaysOn: 5040.0 / 1872.0},
	}
}

func TestBuildMovePlan_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildMovePlan(nil, 30))
	assert.Empty(t, BuildMovePlan([]models.PaddockBudget{}, 30))
	assert.Empty(t, BuildMovePlan(scenarioBudgets(), 0))
}

func TestBuildMovePlan_RoundRobinScenario(t *testing.T) {
	steps := BuildMovePlan(scenarioBudgets(), 10)

	// 2.56 + 2.69 + 2.56 covers only 7.81 days, so the plan keeps cycling.
	require.GreaterOrEqual(t, len(steps), 4)

	assert.Equal(t, "p1", steps[0].PaddockID)
	assert.Equal(t, "p2", steps[1].PaddockID)
	assert.Equal(t, "p1", steps[2].PaddockID)
	assert.Equal(t, "p2", steps[3].PaddockID)

	assert.Equal(t, 1, steps[0].StartDay)
	assert.Equal(t, 3, steps[1].StartDay)
	assert.Equal(t, 6, steps[2].StartDay)
	assert.Equal(t, 8, steps[3].StartDay)

	assert.InDelta(t, 2.56, steps[0].EstimatedDays, 1e-9)
	assert.InDelta(t, 2.69, steps[1].EstimatedDays, 1e-9)
}

func TestBuildMovePlan_CoversHorizon(t *testing.T) {
	for _, horizon := range []int{1, 10, 45, 120} {
		steps := BuildMovePlan(scenarioBudgets(), horizon)
		require.NotEmpty(t, steps)

		var total float64
		for _, step := range steps {
			assert.Positive(t, step.StartDay)
			assert.GreaterOrEqual(t, step.EstimatedDays, MinimumStayDays)
			total += step.EstimatedDays
		}
		assert.GreaterOrEqual(t, total, float64(horizon))
	}
}

func TestBuildMovePlan_ZeroSupplyPaddockStillVisited(t *testing.T) {
	budgets := []models.PaddockBudget{
		{PaddockID: "grazed", DaysOn: 3},
		{PaddockID: "bare", DaysOn: 0},
	}

	steps := BuildMovePlan(budgets, 7)
	require.GreaterOrEqual(t, len(steps), 3)

	assert.Equal(t, "bare", steps[1].PaddockID)
	assert.InDelta(t, MinimumStayDays, steps[1].EstimatedDays, 1e-9)
}

func TestBuildMovePlan_TerminatesOnPathologicalInput(t *testing.T) {
	// Every stay collapses to the minimum; a 10000-day horizon would need
	// 40000 steps, so the iteration bound must cut the plan off.
	budgets := []models.PaddockBudget{
		{PaddockID: "a", DaysOn: 0},
		{PaddockID: "b", DaysOn: 0},
	}

	steps := BuildMovePlan(budgets, 10000)
	assert.Len(t, steps, maxPlanSteps)
}
