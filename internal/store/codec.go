package store

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"CollectIQ/internal/model"
)

// Record is the persisted shape of a price point: the wire format
// between the aggregator and whatever store the caller uses. Price and
// confidence are 2-decimal fixed point so the shape round-trips
// exactly.
type Record struct {
	Date         string `json:"date"`
	Price        string `json:"price"`
	Source       string `json:"source"`
	Condition    string `json:"condition_category"`
	Confidence   string `json:"confidence"`
	ListingCount int    `json:"listing_count"`
}

// Encode converts a price point to its persisted record.
func Encode(p model.PricePoint) Record {
	return Record{
		Date:         p.Date.Format("2006-01-02"),
		Price:        decimal.NewFromFloat(p.Price).StringFixed(2),
		Source:       p.Source,
		Condition:    string(p.Condition),
		Confidence:   decimal.NewFromFloat(p.Confidence).StringFixed(2),
		ListingCount: p.ListingCount,
	}
}

// Decode parses a persisted record back into a price point.
func Decode(r Record) (model.PricePoint, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return model.PricePoint{}, fmt.Errorf("parse date %q: %w", r.Date, err)
	}
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return model.PricePoint{}, fmt.Errorf("parse price %q: %w", r.Price, err)
	}
	confidence, err := decimal.NewFromString(r.Confidence)
	if err != nil {
		return model.PricePoint{}, fmt.Errorf("parse confidence %q: %w", r.Confidence, err)
	}
	return model.PricePoint{
		Date:         date,
		Price:        price.InexactFloat64(),
		Source:       r.Source,
		Condition:    model.Condition(r.Condition),
		Confidence:   confidence.InexactFloat64(),
		ListingCount: r.ListingCount,
	}, nil
}
