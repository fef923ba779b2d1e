package rotation

import (
	"math"

	"github.com/pasturelab/grazeplan/internal/domain/models"
)

const (
	// MinimumStayDays floors every rotation step so a paddock with zero or
	// near-zero supply cannot stall the schedule. The paddock is still
	// visited; its near-zero allocation stays visible to the user.
	MinimumStayDays = 0.25

	// maxPlanSteps bounds the schedule length regardless of horizon, so the
	// loop terminates even when every stay collapses to the minimum.
	maxPlanSteps = 1000
)

// BuildMovePlan produces an ordered paddock occupancy schedule covering the
// planning horizon. It cycles round-robin through the paddocks using each
// one's standalone days-on figure; it is an auditable heuristic, not an
// optimizer.
func BuildMovePlan(budgets []models.PaddockBudget, horizonDays int) []models.MoveStep {
	steps := make([]models.MoveStep, 0, len(budgets))
	if len(budgets) == 0 || horizonDays <= 0 {
		return steps
	}

	day := 0.0
	for i := 0; day < float64(horizonDays) && i < maxPlanSteps; i++ {
		b := budgets[i%len(budgets)]
		stay := math.Max(MinimumStayDays, b.DaysOn)

		steps = append(steps, models.MoveStep{
			StartDay:      int(math.Floor(day)) + 1,
			PaddockID:     b.PaddockID,
			PaddockName:   b.PaddockName,
			EstimatedDays: math.Round(stay*100) / 100,
		})
		day += stay
	}

	return steps
}
