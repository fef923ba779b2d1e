package models

import "time"

// SpeciesRate is one species line in a seeding mix.
type SpeciesRate struct {
	Species       string  `bson:"species" json:"species" binding:"required"`
	RateLbPerAcre float64 `bson:"rate_lb_per_acre" json:"rate_lb_per_acre"`
}

// SeedingRecord captures a seeding recipe applied to a paddock. Records are
// application history, not cost-model inputs; the planning session keeps its
// own transient rates.
type SeedingRecord struct {
	PaddockID    string        `bson:"paddock_id" json:"paddock_id"`
	MixName      string        `bson:"mix_name" json:"mix_name" binding:"required"`
	SpeciesRates []SpeciesRate `bson:"species_rates" json:"species_rates"`
	Notes        string        `bson:"notes,omitempty" json:"notes"`
	RecordedAt   time.Time     `bson:"recorded_at" json:"recorded_at"`
}

// AmendmentRecord captures a fertilizer or lime application on a paddock.
type AmendmentRecord struct {
	PaddockID  string    `bson:"paddock_id" json:"paddock_id"`
	Product    string    `bson:"product" json:"product" binding:"required"`
	RateText   string    `bson:"rate_text" json:"rate_text"`
	Notes      string    `bson:"notes,omitempty" json:"notes"`
	RecordedAt time.Time `bson:"recorded_at" json:"recorded_at"`
}
