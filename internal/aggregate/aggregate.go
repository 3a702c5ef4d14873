package aggregate

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"CollectIQ/internal/model"
)

const maxSampleTitles = 3

// Aggregate reduces observations to one price point per (calendar day,
// condition) group. Median, not mean: it damps any outlier that
// survived upstream filtering. Pre-aggregated observations (Weight set)
// bypass the reducer and map one-to-one onto price points. Groups are
// independent; nothing merges across dates or conditions. Days are
// calendar days in UTC regardless of the timestamp's offset. A group
// spanning multiple sources keeps the first-seen source on the emitted
// point.
func Aggregate(obs []Observation) []model.PricePoint {
	type groupAcc struct {
		date   time.Time
		cond   model.Condition
		source string
		prices []float64
		titles []string
	}

	groups := make(map[string]*groupAcc)
	order := make([]string, 0)
	points := make([]model.PricePoint, 0)

	for _, o := range obs {
		if o.Weight > 0 {
			points = append(points, model.PricePoint{
				Date:         day(o.Date),
				Condition:    o.Condition,
				Price:        o.Price,
				Confidence:   o.Weight,
				ListingCount: 1,
				Source:       o.Source,
			})
			continue
		}

		key := day(o.Date).Format("2006-01-02") + "|" + string(o.Condition)
		g, ok := groups[key]
		if !ok {
			g = &groupAcc{date: day(o.Date), cond: o.Condition, source: o.Source}
			groups[key] = g
			order = append(order, key)
		}
		g.prices = append(g.prices, o.Price)
		if o.Title != "" && len(g.titles) < maxSampleTitles {
			g.titles = append(g.titles, o.Title)
		}
	}

	for _, key := range order {
		g := groups[key]
		median, err := stats.Median(g.prices)
		if err != nil {
			continue
		}
		n := len(g.prices)
		confidence := float64(n) / 10.0
		if confidence > 1.0 {
			confidence = 1.0
		}
		points = append(points, model.PricePoint{
			Date:         g.date,
			Condition:    g.cond,
			Price:        median,
			Confidence:   confidence,
			ListingCount: n,
			Source:       g.source,
			SampleTitles: g.titles,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		if !points[i].Date.Equal(points[j].Date) {
			return points[i].Date.Before(points[j].Date)
		}
		if points[i].Condition != points[j].Condition {
			return points[i].Condition < points[j].Condition
		}
		return points[i].Source < points[j].Source
	})
	return points
}

// Listings normalizes raw listings and reduces them in one call.
func Listings(listings []model.ListingRecord) []model.PricePoint {
	return Aggregate(FromListings(listings))
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
