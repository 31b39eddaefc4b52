package models

// Tariff is a paid placement plan. Categories lists the category IDs the
// tariff applies to.
type Tariff struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	Categories   []int64 `json:"categories"`
}
