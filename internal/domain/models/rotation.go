package models

// MoveStep is one entry in an ordered rotation schedule: which paddock the
// herd occupies, starting on which 1-based day, for how long.
type MoveStep struct {
	StartDay      int     `json:"start_day"`
	PaddockID     string  `json:"paddock_id"`
	PaddockName   string  `json:"paddock_name"`
	EstimatedDays float64 `json:"estimated_days"`
}

// GrowthAllocation is the proportional-contribution view of one paddock: its
// share of horizon-wide regrowth and the days of grazing that share supports.
// It answers "how much does this paddock contribute", not "when do we move" —
// that is the move plan's job.
type GrowthAllocation struct {
	PaddockID       string  `json:"paddock_id"`
	PaddockName     string  `json:"paddock_name"`
	TakeableDmLb    float64 `json:"takeable_dm_lb"`
	GrowthShareLb   float64 `json:"growth_share_lb"`
	ContributedDays float64 `json:"contributed_days"`
}
