package aggregate

import (
	"time"

	"CollectIQ/internal/model"
)

// MarketConfidence is the fixed confidence assigned to pre-aggregated
// secondary-market export points.
const MarketConfidence = 0.85

// Observation is the one shape the reducer sees. Every external input
// (per-listing records, chart points, price-by-condition maps) is
// normalized into it before any grouping runs. A non-zero Weight marks
// a pre-aggregated point that bypasses the listing-level reducer.
type Observation struct {
	Date      time.Time
	Price     float64
	Condition model.Condition
	Source    string
	Title     string
	Weight    float64
}

// ChartPoint is one entry of a historical price export.
type ChartPoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// FromListings normalizes raw listings. The sold date is preferred,
// falling back to the ingestion timestamp; listings with neither, or
// with a non-positive price, are silently dropped. Aggregation is a
// best-effort reducer, not a filter.
func FromListings(listings []model.ListingRecord) []Observation {
	obs := make([]Observation, 0, len(listings))
	for _, l := range listings {
		if l.Price <= 0 {
			continue
		}
		var date time.Time
		switch {
		case l.SoldAt != nil && !l.SoldAt.IsZero():
			date = *l.SoldAt
		case !l.FetchedAt.IsZero():
			date = l.FetchedAt
		default:
			continue
		}
		obs = append(obs, Observation{
			Date:      date,
			Price:     l.Price,
			Condition: l.ConditionCategory(),
			Source:    l.Source,
			Title:     l.Title,
		})
	}
	return obs
}

// FromChartPoints normalizes a dated export series. Each valid
// (date, price>0) pair becomes one market-condition observation with
// the fixed market confidence.
func FromChartPoints(points []ChartPoint, source string) []Observation {
	obs := make([]Observation, 0, len(points))
	for _, p := range points {
		if p.Price <= 0 || p.Date.IsZero() {
			continue
		}
		obs = append(obs, Observation{
			Date:      p.Date,
			Price:     p.Price,
			Condition: model.ConditionMarket,
			Source:    source,
			Weight:    MarketConfidence,
		})
	}
	return obs
}

// FromConditionPrices normalizes a "current price by condition" export
// taken as of a single date.
func FromConditionPrices(prices map[model.Condition]float64, asOf time.Time, source string) []Observation {
	obs := make([]Observation, 0, len(prices))
	for cond, price := range prices {
		if price <= 0 || asOf.IsZero() {
			continue
		}
		if cond == "" {
			cond = model.ConditionMarket
		}
		obs = append(obs, Observation{
			Date:      asOf,
			Price:     price,
			Condition: cond,
			Source:    source,
			Weight:    MarketConfidence,
		})
	}
	return obs
}
