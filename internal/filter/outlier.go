package filter

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"CollectIQ/internal/model"
)

// DefaultOutlierK is the standard IQR multiplier.
const DefaultOutlierK = 1.5

type iqrBounds struct {
	low  float64
	high float64
}

// RemoveOutliers partitions listings by (source, condition category)
// and rejects prices outside [Q1 - k*IQR, Q3 + k*IQR] within each
// group. Groups smaller than 3 are kept unconditionally: too little
// data for a quartile estimate. Classification depends only on the
// value, so output is stable across input orderings within a group.
func RemoveOutliers(listings []model.ListingRecord, k float64) ([]model.ListingRecord, []model.RejectionRecord) {
	if k <= 0 {
		k = DefaultOutlierK
	}

	groups := make(map[string][]float64)
	for _, l := range listings {
		key := groupKey(l)
		groups[key] = append(groups[key], l.Price)
	}

	bounds := make(map[string]iqrBounds, len(groups))
	for key, prices := range groups {
		if len(prices) < 3 {
			continue
		}
		q, err := stats.Quartile(prices)
		if err != nil {
			continue
		}
		iqr := q.Q3 - q.Q1
		bounds[key] = iqrBounds{low: q.Q1 - k*iqr, high: q.Q3 + k*iqr}
	}

	kept := make([]model.ListingRecord, 0, len(listings))
	var rejected []model.RejectionRecord
	for _, l := range listings {
		key := groupKey(l)
		b, ok := bounds[key]
		if !ok {
			kept = append(kept, l)
			continue
		}
		switch {
		case l.Price < b.low:
			rejected = append(rejected, model.RejectionRecord{
				Listing: l,
				Reason:  model.ReasonOutlierLow,
				Detail:  fmt.Sprintf("group %s: $%.2f below $%.2f", key, l.Price, b.low),
			})
		case l.Price > b.high:
			rejected = append(rejected, model.RejectionRecord{
				Listing: l,
				Reason:  model.ReasonOutlierHigh,
				Detail:  fmt.Sprintf("group %s: $%.2f above $%.2f", key, l.Price, b.high),
			})
		default:
			kept = append(kept, l)
		}
	}

	return kept, rejected
}

func groupKey(l model.ListingRecord) string {
	return l.Source + "/" + string(l.ConditionCategory())
}
