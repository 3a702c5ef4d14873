package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CollectIQ/internal/model"
)

func soldListing(price float64, title string, sold time.Time) model.ListingRecord {
	return model.ListingRecord{
		Price:     price,
		Title:     title,
		Source:    "ebay",
		Kind:      model.SourceListing,
		Sealed:    true,
		SoldAt:    &sold,
		FetchedAt: sold.Add(24 * time.Hour),
	}
}

func TestAggregate_ConfidenceSaturates(t *testing.T) {
	day := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	prices := []float64{98, 99, 99, 100, 100, 100, 101, 101, 102, 102, 103, 97}
	listings := make([]model.ListingRecord, len(prices))
	for i, p := range prices {
		listings[i] = soldListing(p, "Sealed Box", day)
	}

	points := Listings(listings)

	require.Len(t, points, 1)
	p := points[0]
	assert.Equal(t, 100.0, p.Price) // median of the cluster
	assert.Equal(t, 1.0, p.Confidence)
	assert.Equal(t, 12, p.ListingCount)
	assert.Equal(t, model.ConditionSealed, p.Condition)
	assert.Len(t, p.SampleTitles, 3)
	assert.Equal(t, "2025-03-10", p.Day())
}

func TestAggregate_PartialConfidence(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	listings := []model.ListingRecord{
		soldListing(100, "a", day),
		soldListing(110, "b", day),
		soldListing(120, "c", day),
	}
	points := Listings(listings)
	require.Len(t, points, 1)
	assert.Equal(t, 110.0, points[0].Price)
	assert.InDelta(t, 0.3, points[0].Confidence, 1e-9)
}

func TestAggregate_GroupsByDateAndCondition(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	graded := soldListing(500, "PSA 10", day1)
	graded.Sealed = false
	graded.Graded = true

	points := Listings([]model.ListingRecord{
		soldListing(100, "box", day1),
		soldListing(105, "box", day2),
		graded,
	})

	require.Len(t, points, 3)
	// Sorted by date, then condition.
	assert.Equal(t, model.ConditionGraded, points[0].Condition)
	assert.Equal(t, model.ConditionSealed, points[1].Condition)
	assert.Equal(t, "2025-03-11", points[2].Day())
}

func TestAggregate_GroupsByUTCDayAcrossOffsets(t *testing.T) {
	// Same UTC calendar day, different local dates.
	est := time.FixedZone("EST", -5*60*60)
	late := time.Date(2025, 3, 10, 23, 0, 0, 0, est) // 2025-03-11T04:00Z
	early := time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC)

	points := Listings([]model.ListingRecord{
		soldListing(100, "box", late),
		soldListing(110, "box", early),
	})

	require.Len(t, points, 1)
	assert.Equal(t, "2025-03-11", points[0].Day())
	assert.Equal(t, 2, points[0].ListingCount)
	assert.Equal(t, 105.0, points[0].Price)
}

func TestAggregate_KeepsFirstSeenSource(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	first := soldListing(100, "box", day)
	second := soldListing(110, "box", day)
	second.Source = "tcgplayer"

	points := Listings([]model.ListingRecord{first, second})

	require.Len(t, points, 1)
	assert.Equal(t, "ebay", points[0].Source)
	assert.Equal(t, 2, points[0].ListingCount)
}

func TestAggregate_FallsBackToFetchedAt(t *testing.T) {
	l := model.ListingRecord{
		Price:     100,
		Source:    "ebay",
		Kind:      model.SourceListing,
		FetchedAt: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	points := Listings([]model.ListingRecord{l})
	require.Len(t, points, 1)
	assert.Equal(t, "2025-05-01", points[0].Day())
	assert.Equal(t, model.ConditionRaw, points[0].Condition)
}

func TestAggregate_DropsUndatedAndUnpriced(t *testing.T) {
	points := Listings([]model.ListingRecord{
		{Price: 100, Source: "ebay"},       // no date at all
		{Price: 0, FetchedAt: time.Now()},  // no price
		{Price: -5, FetchedAt: time.Now()}, // negative price
	})
	assert.Empty(t, points)
}

func TestFromChartPoints_BypassesReducer(t *testing.T) {
	day1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	obs := FromChartPoints([]ChartPoint{
		{Date: day1, Price: 120},
		{Date: day1.AddDate(0, 0, 1), Price: 125},
		{Date: day1.AddDate(0, 0, 2), Price: 0}, // invalid, dropped
	}, "pricecharting")

	points := Aggregate(obs)

	require.Len(t, points, 2)
	for _, p := range points {
		assert.Equal(t, model.ConditionMarket, p.Condition)
		assert.Equal(t, MarketConfidence, p.Confidence)
		assert.Equal(t, 1, p.ListingCount)
		assert.Equal(t, "pricecharting", p.Source)
	}
}

func TestFromConditionPrices(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	obs := FromConditionPrices(map[model.Condition]float64{
		model.ConditionNew:   180,
		model.ConditionLoose: 90,
		"":                   60,
	}, asOf, "pricecharting")

	points := Aggregate(obs)

	require.Len(t, points, 3)
	conditions := map[model.Condition]bool{}
	for _, p := range points {
		conditions[p.Condition] = true
		assert.Equal(t, MarketConfidence, p.Confidence)
	}
	assert.True(t, conditions[model.ConditionNew])
	assert.True(t, conditions[model.ConditionLoose])
	assert.True(t, conditions[model.ConditionMarket]) // unnamed condition
}
