package model

import "time"

// PricePoint is one aggregated, date-and-condition-scoped price
// observation. Immutable once written; this is the unit persisted by
// the store and read back for metrics.
type PricePoint struct {
	Date         time.Time `json:"date"`
	Condition    Condition `json:"condition_category"`
	Price        float64   `json:"price"`
	Confidence   float64   `json:"confidence"`
	ListingCount int       `json:"listing_count"`
	Source       string    `json:"source"`
	SampleTitles []string  `json:"sample_titles,omitempty"`
}

// Day returns the calendar-day key for grouping.
func (p PricePoint) Day() string {
	return p.Date.Format("2006-01-02")
}
