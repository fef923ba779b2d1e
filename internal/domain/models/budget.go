package models

// PaddockBudget is the derived forage budget for one paddock. It is transient
// view state, recomputed from scratch on every input change and never
// persisted.
type PaddockBudget struct {
	PaddockID            string  `json:"paddock_id"`
	PaddockName          string  `json:"paddock_name"`
	Acres                float64 `json:"acres"`
	GrazeableDmLbPerAcre float64 `json:"grazeable_dm_lb_per_acre"`
	// DailySupplyLb is the takeable dry matter of the paddock: grazeable DM
	// per acre times acreage. It doubles as the proportional-allocation basis.
	DailySupplyLb         float64 `json:"daily_supply_lb"`
	DaysOn                float64 `json:"days_on"`
	GrowthLbPerAcrePerDay float64 `json:"growth_lb_per_acre_per_day"`
}

// BudgetSummary aggregates the per-paddock budgets over the planning horizon.
type BudgetSummary struct {
	DailyDemandLb                float64         `json:"daily_demand_lb"`
	HorizonDays                  int             `json:"horizon_days"`
	PerPaddock                   []PaddockBudget `json:"per_paddock"`
	TotalDailySupplyLb           float64         `json:"total_daily_supply_lb"`
	TotalDaysOnAllPaddocks       float64         `json:"total_days_on_all_paddocks"`
	AverageGrowthLbPerAcrePerDay float64         `json:"average_growth_lb_per_acre_per_day"`
	GrowthOverHorizonLb          float64         `json:"growth_over_horizon_lb"`
	TotalAvailableDmLb           float64         `json:"total_available_dm_lb"`
	CoverageDays                 float64         `json:"coverage_days"`
	DeficitLb                    float64         `json:"deficit_lb"`
}

// HasDeficit reports whether the herd cannot be carried through the horizon
// on standing forage plus expected regrowth.
func (s BudgetSummary) HasDeficit() bool {
	return s.DeficitLb > 0
}
