package models

// Paddock is the per-paddock forage state loaded from the record store and
// edited in memory during a planning session. Amendment fields default to 0
// when the stored document omits them.
type Paddock struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`

	Acres                   float64 `bson:"acres" json:"acres"`
	StandingDmLbPerAcre     float64 `bson:"standing_dm_lb_per_acre" json:"standing_dm_lb_per_acre"`
	TargetResidualLbPerAcre float64 `bson:"target_residual_lb_per_acre" json:"target_residual_lb_per_acre"`
	UtilizationPct          float64 `bson:"utilization_pct" json:"utilization_pct"`
	GrowthLbPerAcrePerDay   float64 `bson:"growth_lb_per_acre_per_day" json:"growth_lb_per_acre_per_day"`

	SeedRateLbPerAcre   float64 `bson:"seed_rate_lb_per_acre,omitempty" json:"seed_rate_lb_per_acre"`
	SeedPricePerLb      float64 `bson:"seed_price_per_lb,omitempty" json:"seed_price_per_lb"`
	NRateLbPerAcre      float64 `bson:"n_rate_lb_per_acre,omitempty" json:"n_rate_lb_per_acre"`
	PRateLbPerAcre      float64 `bson:"p_rate_lb_per_acre,omitempty" json:"p_rate_lb_per_acre"`
	KRateLbPerAcre      float64 `bson:"k_rate_lb_per_acre,omitempty" json:"k_rate_lb_per_acre"`
	NCostPerLb          float64 `bson:"n_cost_per_lb,omitempty" json:"n_cost_per_lb"`
	PCostPerLb          float64 `bson:"p_cost_per_lb,omitempty" json:"p_cost_per_lb"`
	KCostPerLb          float64 `bson:"k_cost_per_lb,omitempty" json:"k_cost_per_lb"`
	LimeRateTonsPerAcre float64 `bson:"lime_rate_tons_per_acre,omitempty" json:"lime_rate_tons_per_acre"`
	LimeCostPerTon      float64 `bson:"lime_cost_per_ton,omitempty" json:"lime_cost_per_ton"`
}

// Sanitized returns a copy with every numeric field coerced into its valid
// range: negatives and non-finite values become 0, utilization is clamped to
// [0,100]. Applied once when a paddock enters the engine so the budget and
// cost formulas stay total.
func (p Paddock) Sanitized() Paddock {
	p.Acres = nonNegative(p.Acres)
	p.StandingDmLbPerAcre = nonNegative(p.StandingDmLbPerAcre)
	p.TargetResidualLbPerAcre = nonNegative(p.TargetResidualLbPerAcre)
	p.UtilizationPct = clampPercent(p.UtilizationPct)
	p.GrowthLbPerAcrePerDay = nonNegative(p.GrowthLbPerAcrePerDay)

	p.SeedRateLbPerAcre = nonNegative(p.SeedRateLbPerAcre)
	p.SeedPricePerLb = nonNegative(p.SeedPricePerLb)
	p.NRateLbPerAcre = nonNegative(p.NRateLbPerAcre)
	p.PRateLbPerAcre = nonNegative(p.PRateLbPerAcre)
	p.KRateLbPerAcre = nonNegative(p.KRateLbPerAcre)
	p.NCostPerLb = nonNegative(p.NCostPerLb)
	p.PCostPerLb = nonNegative(p.PCostPerLb)
	p.KCostPerLb = nonNegative(p.KCostPerLb)
	p.LimeRateTonsPerAcre = nonNegative(p.LimeRateTonsPerAcre)
	p.LimeCostPerTon = nonNegative(p.LimeCostPerTon)
	return p
}
