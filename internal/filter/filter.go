package filter

import (
	"fmt"
	"regexp"
	"strings"

	"CollectIQ/internal/model"
)

// RuleFilter separates legitimate observations of a product from
// mislabeled, damaged, or wrong-variant listings using the category's
// price band and title-pattern rules.
type RuleFilter struct {
	cfg *Config
}

// NewRuleFilter creates a RuleFilter. A nil config uses the production
// tables.
func NewRuleFilter(cfg *Config) *RuleFilter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &RuleFilter{cfg: cfg}
}

// Resolve exposes category resolution for callers that need the band
// the filter applied (reporting, invariant checks).
func (f *RuleFilter) Resolve(profile model.ProductProfile) Category {
	return f.cfg.Resolve(profile)
}

// BandFor returns the price band applied to the given category.
func (f *RuleFilter) BandFor(cat Category) Band {
	return f.cfg.RulesFor(cat).Band
}

// Filter classifies listings against the profile's category rules.
// Survivors are returned in their original order. A missing or
// non-positive price is a price_threshold rejection, never an error.
func (f *RuleFilter) Filter(listings []model.ListingRecord, profile model.ProductProfile) ([]model.ListingRecord, []model.RejectionRecord) {
	cat := f.cfg.Resolve(profile)
	rules := f.cfg.RulesFor(cat)

	kept := make([]model.ListingRecord, 0, len(listings))
	var rejected []model.RejectionRecord

	for _, l := range listings {
		if l.Price <= 0 || !rules.Band.Contains(l.Price) {
			rejected = append(rejected, model.RejectionRecord{
				Listing: l,
				Reason:  model.ReasonPriceThreshold,
				Detail:  fmt.Sprintf("price outside $%.2f-$%.2f band for %s", rules.Band.Min, rules.Band.Max, cat),
			})
			continue
		}

		// Title rules only apply to marketplace listings that carry a
		// title; market exports have no title to test.
		if l.Kind == model.SourceListing && l.Title != "" {
			title := strings.ToLower(l.Title)
			if pattern, hit := firstMatch(rules.Reject, title); hit {
				rejected = append(rejected, model.RejectionRecord{
					Listing: l,
					Reason:  model.ReasonTitlePattern,
					Detail:  fmt.Sprintf("matched %q", pattern),
				})
				continue
			}
			if rules.RequireKeywords && !hasBoosterBoxKeywords(title) {
				rejected = append(rejected, model.RejectionRecord{
					Listing: l,
					Reason:  model.ReasonTitlePattern,
					Detail:  "missing booster box keywords",
				})
				continue
			}
		}

		kept = append(kept, l)
	}

	return kept, rejected
}

func firstMatch(patterns []*regexp.Regexp, title string) (string, bool) {
	for _, p := range patterns {
		if p.MatchString(title) {
			return p.String(), true
		}
	}
	return "", false
}

// hasBoosterBoxKeywords is the positive test for the strict booster_box
// category: the title must say "booster box", or both "box" and
// "booster", or a full box pack count (36/24) plus "pack".
func hasBoosterBoxKeywords(title string) bool {
	if strings.Contains(title, "booster box") {
		return true
	}
	if strings.Contains(title, "box") && strings.Contains(title, "booster") {
		return true
	}
	if (strings.Contains(title, "36") || strings.Contains(title, "24")) && strings.Contains(title, "pack") {
		return true
	}
	return false
}
