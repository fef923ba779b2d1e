package models

import "github.com/shopspring/decimal"

// PaddockCost breaks down projected amendment spend for one paddock. Amounts
// are exact decimals; rounding for display is the presentation layer's
// concern.
type PaddockCost struct {
	PaddockID      string          `json:"paddock_id"`
	PaddockName    string          `json:"paddock_name"`
	SeedCost       decimal.Decimal `json:"seed_cost"`
	FertilizerCost decimal.Decimal `json:"fertilizer_cost"`
	LimeCost       decimal.Decimal `json:"lime_cost"`
	Total          decimal.Decimal `json:"total"`
}

// ProjectTotals rolls the per-paddock costs up to the whole project.
type ProjectTotals struct {
	Seed       decimal.Decimal `json:"seed"`
	Fertilizer decimal.Decimal `json:"fertilizer"`
	Lime       decimal.Decimal `json:"lime"`
	Total      decimal.Decimal `json:"total"`
}
