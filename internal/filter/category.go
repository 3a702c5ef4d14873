package filter

import (
	"regexp"
	"strings"

	"CollectIQ/internal/model"
)

// Category is the product-category key used to select a price band and
// pattern list. Resolution is total: every profile maps to exactly one
// category.
type Category string

const (
	CategoryBoosterBox          Category = "booster_box"
	CategoryBoosterBoxInclusive Category = "booster_box_inclusive"
	CategoryEliteTrainerBox     Category = "elite_trainer_box"
	CategoryThemeDeck           Category = "theme_deck"
	CategorySinglePack          Category = "single_pack"
	CategoryCard                Category = "card"
)

// Band is an inclusive USD price range.
type Band struct {
	Min float64
	Max float64
}

// Contains reports whether p lies within the band.
func (b Band) Contains(p float64) bool {
	return p >= b.Min && p <= b.Max
}

// CategoryRules bundles everything the rule filter needs for one
// category: the price band, the ordered rejection patterns, and whether
// titles must also pass the positive-keyword test.
type CategoryRules struct {
	Band            Band
	Reject          []*regexp.Regexp
	RequireKeywords bool
}

// Config holds the filter's lookup tables. It is an explicit value so
// that test fixtures and production bands can coexist; DefaultConfig
// returns the production tables.
type Config struct {
	Categories map[Category]CategoryRules
}

var etbPattern = regexp.MustCompile(`\betb\b`)

// Resolve maps a product profile to its category. Sealed products fall
// back to the inclusive booster-box category, singles to card.
func (c *Config) Resolve(profile model.ProductProfile) Category {
	name := strings.ToLower(profile.Name)
	switch {
	case strings.Contains(name, "elite trainer box") || etbPattern.MatchString(name):
		return CategoryEliteTrainerBox
	case strings.Contains(name, "theme deck"):
		return CategoryThemeDeck
	case strings.Contains(name, "booster pack") || strings.Contains(name, "single pack"):
		return CategorySinglePack
	case strings.Contains(name, "booster box") && strings.Contains(name, "strict"):
		return CategoryBoosterBox
	case strings.Contains(name, "booster box"):
		return CategoryBoosterBoxInclusive
	case profile.Single:
		return CategoryCard
	default:
		return CategoryBoosterBoxInclusive
	}
}

// RulesFor returns the rules for cat, falling back to the inclusive
// booster-box rules for sealed categories and card rules otherwise.
// A configuration gap is never a fault: if the fallback entry is also
// missing from a partial table, the production rules apply.
func (c *Config) RulesFor(cat Category) CategoryRules {
	if r, ok := c.Categories[cat]; ok {
		return r
	}
	fallback := CategoryBoosterBoxInclusive
	if cat == CategoryCard {
		fallback = CategoryCard
	}
	if r, ok := c.Categories[fallback]; ok {
		return r
	}
	return DefaultConfig().Categories[fallback]
}

// DefaultConfig returns the production price bands and pattern tables.
func DefaultConfig() *Config {
	common := []*regexp.Regexp{
		regexp.MustCompile(`\bblister\b`),
		regexp.MustCompile(`\bempty\b`),
		regexp.MustCompile(`\bdamaged\b`),
		regexp.MustCompile(`\bopened\b`),
		regexp.MustCompile(`\bresealed\b`),
		regexp.MustCompile(`\bbox only\b`),
		regexp.MustCompile(`\bno (cards?|packs?)\b`),
	}
	// Bare pack counts: a strict booster box listing offering 1-12 loose
	// packs is not a box; even inclusive mode rejects counts up to 6.
	packCount1to12 := regexp.MustCompile(`\b(1[0-2]|[1-9])\s*(booster\s*)?packs?\b`)
	packCount1to6 := regexp.MustCompile(`\b[1-6]\s*(booster\s*)?packs?\b`)

	withCommon := func(extra ...*regexp.Regexp) []*regexp.Regexp {
		out := make([]*regexp.Regexp, 0, len(common)+len(extra))
		out = append(out, extra...)
		out = append(out, common...)
		return out
	}

	return &Config{
		Categories: map[Category]CategoryRules{
			CategoryBoosterBox: {
				Band:            Band{Min: 50, Max: 1000},
				Reject:          withCommon(packCount1to12),
				RequireKeywords: true,
			},
			CategoryBoosterBoxInclusive: {
				Band:   Band{Min: 25, Max: 1000},
				Reject: withCommon(packCount1to6),
			},
			CategoryEliteTrainerBox: {
				Band:   Band{Min: 25, Max: 200},
				Reject: withCommon(packCount1to6),
			},
			CategoryThemeDeck: {
				Band:   Band{Min: 10, Max: 500},
				Reject: withCommon(),
			},
			CategorySinglePack: {
				Band:   Band{Min: 2, Max: 100},
				Reject: withCommon(),
			},
			CategoryCard: {
				Band:   Band{Min: 0.25, Max: 10000},
				Reject: withCommon(),
			},
		},
	}
}
