package source

import (
	"fmt"
	"time"

	"CollectIQ/internal/aggregate"
	"CollectIQ/internal/model"
)

// Source supplies already-parsed listing records and historical export
// points for a product. The pipeline never scrapes or parses markup;
// whatever medium a source reads, it hands over structured records.
type Source interface {
	FetchListings(product string) ([]model.ListingRecord, error)
	FetchHistory(product string) ([]aggregate.ChartPoint, error)
	Name() string
}

// MockSource returns controllable fixed data for development and
// testing.
type MockSource struct {
	BasePrice float64
	Listings  []model.ListingRecord
	History   []aggregate.ChartPoint
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) FetchListings(_ string) ([]model.ListingRecord, error) {
	if m.Listings != nil {
		return m.Listings, nil
	}
	if m.BasePrice <= 0 {
		return nil, fmt.Errorf("mock source: no listings and no base price")
	}
	return generateMockListings(m.BasePrice, 30), nil
}

func (m *MockSource) FetchHistory(_ string) ([]aggregate.ChartPoint, error) {
	return m.History, nil
}

func generateMockListings(basePrice float64, count int) []model.ListingRecord {
	listings := make([]model.ListingRecord, count)
	for i := 0; i < count; i++ {
		sold := time.Now().AddDate(0, 0, -(count - i))
		listings[i] = model.ListingRecord{
			Price:     basePrice * (1 + float64(i-count/2)*0.002),
			Title:     fmt.Sprintf("Sealed Booster Box Lot %d", i+1),
			Source:    "mock",
			Kind:      model.SourceListing,
			Sealed:    true,
			SoldAt:    &sold,
			FetchedAt: time.Now(),
		}
	}
	return listings
}
