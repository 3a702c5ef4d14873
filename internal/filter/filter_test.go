package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CollectIQ/internal/model"
)

func listing(price float64, title string) model.ListingRecord {
	return model.ListingRecord{
		Price:  price,
		Title:  title,
		Source: "ebay",
		Kind:   model.SourceListing,
	}
}

func TestResolve_Categories(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name    string
		profile model.ProductProfile
		want    Category
	}{
		{"booster box", model.ProductProfile{Name: "Evolving Skies Booster Box"}, CategoryBoosterBoxInclusive},
		{"strict booster box", model.ProductProfile{Name: "Evolving Skies Booster Box (strict)"}, CategoryBoosterBox},
		{"elite trainer box", model.ProductProfile{Name: "Crown Zenith Elite Trainer Box"}, CategoryEliteTrainerBox},
		{"etb shorthand", model.ProductProfile{Name: "Crown Zenith ETB"}, CategoryEliteTrainerBox},
		{"theme deck", model.ProductProfile{Name: "Base Set Theme Deck"}, CategoryThemeDeck},
		{"booster pack", model.ProductProfile{Name: "151 Booster Pack"}, CategorySinglePack},
		{"single card", model.ProductProfile{Name: "Charizard Holo", Single: true}, CategoryCard},
		{"unknown sealed falls back", model.ProductProfile{Name: "Mystery Collection Tin"}, CategoryBoosterBoxInclusive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.Resolve(tt.profile))
		})
	}
}

func TestRulesFor_PartialConfigFallsBackToDefaults(t *testing.T) {
	cfg := &Config{Categories: map[Category]CategoryRules{
		CategoryThemeDeck: {Band: Band{Min: 5, Max: 50}},
	}}

	assert.Equal(t, Band{Min: 5, Max: 50}, cfg.RulesFor(CategoryThemeDeck).Band)

	// Missing entries get the production bands, not the zero band.
	def := DefaultConfig()
	assert.Equal(t, def.Categories[CategoryCard].Band, cfg.RulesFor(CategoryCard).Band)
	assert.Equal(t, def.Categories[CategoryBoosterBoxInclusive].Band, cfg.RulesFor(CategoryEliteTrainerBox).Band)

	f := NewRuleFilter(cfg)
	kept, rejected := f.Filter([]model.ListingRecord{listing(100, "X Booster Box Sealed")},
		model.ProductProfile{Name: "X Booster Box"})
	assert.Len(t, kept, 1)
	assert.Empty(t, rejected)
}

func TestFilter_PriceThreshold(t *testing.T) {
	f := NewRuleFilter(nil)
	profile := model.ProductProfile{Name: "X Booster Box"}
	listings := []model.ListingRecord{
		listing(10, "X Booster Box Sealed"),
		listing(60, "X Booster Box Sealed"),
		listing(900, "X Booster Box Sealed"),
		listing(1200, "X Booster Box Sealed"),
	}

	kept, rejected := f.Filter(listings, profile)

	require.Len(t, kept, 2)
	assert.Equal(t, 60.0, kept[0].Price)
	assert.Equal(t, 900.0, kept[1].Price)
	require.Len(t, rejected, 2)
	for _, r := range rejected {
		assert.Equal(t, model.ReasonPriceThreshold, r.Reason)
	}
}

func TestFilter_NonPositivePriceIsRejection(t *testing.T) {
	f := NewRuleFilter(nil)
	kept, rejected := f.Filter([]model.ListingRecord{listing(0, "X Booster Box")},
		model.ProductProfile{Name: "X Booster Box"})
	assert.Empty(t, kept)
	require.Len(t, rejected, 1)
	assert.Equal(t, model.ReasonPriceThreshold, rejected[0].Reason)
}

func TestFilter_TitlePatterns(t *testing.T) {
	f := NewRuleFilter(nil)
	profile := model.ProductProfile{Name: "X Booster Box"}
	tests := []struct {
		name     string
		title    string
		rejected bool
	}{
		{"small pack count in inclusive mode", "Pokemon Booster Box 4 Packs Only", true},
		{"damaged", "X Booster Box damaged corner", true},
		{"opened", "X Booster Box opened for photos", true},
		{"resealed", "resealed X Booster Box", true},
		{"box only", "X box only no cards", true},
		{"blister", "X blister pack", true},
		{"clean title", "X Booster Box Factory Sealed", false},
		{"large pack count survives inclusive", "X Booster Box 36 Packs Sealed", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, rejected := f.Filter([]model.ListingRecord{listing(80, tt.title)}, profile)
			if tt.rejected {
				require.Len(t, rejected, 1)
				assert.Equal(t, model.ReasonTitlePattern, rejected[0].Reason)
			} else {
				assert.Len(t, kept, 1)
			}
		})
	}
}

func TestFilter_StrictRequiresKeywords(t *testing.T) {
	f := NewRuleFilter(nil)
	profile := model.ProductProfile{Name: "X Booster Box strict"}

	// No positive booster-box keywords at all.
	kept, rejected := f.Filter([]model.ListingRecord{listing(100, "X sealed display case")}, profile)
	assert.Empty(t, kept)
	require.Len(t, rejected, 1)
	assert.Equal(t, model.ReasonTitlePattern, rejected[0].Reason)

	// 36 + pack counts as a positive keyword.
	kept, rejected = f.Filter([]model.ListingRecord{listing(100, "X sealed 36 pack display")}, profile)
	assert.Len(t, kept, 1)
	assert.Empty(t, rejected)
}

func TestFilter_MarketRecordsSkipTitleRules(t *testing.T) {
	f := NewRuleFilter(nil)
	l := model.ListingRecord{
		Price:  80,
		Title:  "damaged", // would reject a marketplace listing
		Source: "pricecharting",
		Kind:   model.SourceMarket,
	}
	kept, rejected := f.Filter([]model.ListingRecord{l}, model.ProductProfile{Name: "X Booster Box"})
	assert.Len(t, kept, 1)
	assert.Empty(t, rejected)
}

func TestFilter_Idempotent(t *testing.T) {
	f := NewRuleFilter(nil)
	profile := model.ProductProfile{Name: "X Booster Box"}
	listings := []model.ListingRecord{
		listing(10, "X Booster Box"),
		listing(60, "X Booster Box Sealed"),
		listing(80, "X Booster Box opened"),
		listing(900, "X Booster Box Mint"),
	}

	kept, _ := f.Filter(listings, profile)
	again, rejected := f.Filter(kept, profile)

	assert.Equal(t, kept, again)
	assert.Empty(t, rejected)
}
