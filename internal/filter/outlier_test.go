package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CollectIQ/internal/model"
)

func priced(price float64) model.ListingRecord {
	return model.ListingRecord{Price: price, Source: "ebay", Kind: model.SourceListing}
}

func TestRemoveOutliers_QuartileCorrectness(t *testing.T) {
	// 10 values with one at roughly 100x the median: exactly that one
	// must go, the other 9 must stay.
	prices := []float64{90, 95, 98, 100, 100, 101, 102, 105, 110, 10000}
	listings := make([]model.ListingRecord, len(prices))
	for i, p := range prices {
		listings[i] = priced(p)
	}

	kept, rejected := RemoveOutliers(listings, 1.5)

	require.Len(t, rejected, 1)
	assert.Equal(t, 10000.0, rejected[0].Listing.Price)
	assert.Equal(t, model.ReasonOutlierHigh, rejected[0].Reason)
	assert.Len(t, kept, 9)
}

func TestRemoveOutliers_LowOutlier(t *testing.T) {
	listings := []model.ListingRecord{
		priced(100), priced(100), priced(101), priced(101), priced(102),
		priced(102), priced(103), priced(103), priced(1),
	}
	kept, rejected := RemoveOutliers(listings, 1.5)
	require.Len(t, rejected, 1)
	assert.Equal(t, model.ReasonOutlierLow, rejected[0].Reason)
	assert.Len(t, kept, 8)
}

func TestRemoveOutliers_SmallGroupsKept(t *testing.T) {
	listings := []model.ListingRecord{priced(1), priced(100000)}
	kept, rejected := RemoveOutliers(listings, 1.5)
	assert.Len(t, kept, 2)
	assert.Empty(t, rejected)
}

func TestRemoveOutliers_GroupsAreIndependent(t *testing.T) {
	graded := model.ListingRecord{Price: 500, Source: "ebay", Graded: true}
	listings := []model.ListingRecord{
		priced(100), priced(101), priced(102),
		// Different condition group, too small to filter.
		graded,
	}
	kept, rejected := RemoveOutliers(listings, 1.5)
	assert.Len(t, kept, 4)
	assert.Empty(t, rejected)
}

func TestRemoveOutliers_OrderIndependentWithinGroup(t *testing.T) {
	forward := []model.ListingRecord{
		priced(90), priced(92), priced(95), priced(98),
		priced(100), priced(102), priced(105), priced(2000),
	}
	reversed := []model.ListingRecord{
		priced(2000), priced(105), priced(102), priced(100),
		priced(98), priced(95), priced(92), priced(90),
	}

	_, rejForward := RemoveOutliers(forward, 1.5)
	_, rejReversed := RemoveOutliers(reversed, 1.5)

	require.Len(t, rejForward, 1)
	require.Len(t, rejReversed, 1)
	assert.Equal(t, rejForward[0].Listing.Price, rejReversed[0].Listing.Price)
}

func TestRemoveOutliers_Idempotent(t *testing.T) {
	listings := []model.ListingRecord{
		priced(90), priced(95), priced(98), priced(100), priced(100),
		priced(101), priced(102), priced(105), priced(110), priced(10000),
	}
	kept, _ := RemoveOutliers(listings, 1.5)
	again, rejected := RemoveOutliers(kept, 1.5)
	assert.Equal(t, kept, again)
	assert.Empty(t, rejected)
}
