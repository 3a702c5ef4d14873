package model

import "time"

// SourceKind distinguishes per-listing marketplace records from
// pre-aggregated secondary-market exports.
type SourceKind string

const (
	SourceListing SourceKind = "listing"
	SourceMarket  SourceKind = "market"
)

// Condition is the coarse physical-state classification of a listing
// or price point.
type Condition string

const (
	ConditionRaw    Condition = "raw"
	ConditionGraded Condition = "graded"
	ConditionSealed Condition = "sealed"
	ConditionMarket Condition = "market"
	ConditionLoose  Condition = "loose"
	ConditionNew    Condition = "new"
	ConditionOther  Condition = "other"
)

// ListingRecord is a single raw marketplace observation. It is owned by
// the listing source and consumed read-only by the pipeline.
type ListingRecord struct {
	Price     float64    `json:"price"`
	Title     string     `json:"title"`
	Source    string     `json:"source"`
	Kind      SourceKind `json:"kind"`
	Condition Condition  `json:"condition"`
	Graded    bool       `json:"graded"`
	Sealed    bool       `json:"sealed"`
	SoldAt    *time.Time `json:"sold_at,omitempty"`
	FetchedAt time.Time  `json:"fetched_at"`
}

// ConditionCategory derives the coarse condition used for grouping.
// An explicit grading flag wins, then an explicit sealed mark, then the
// declared condition, then raw.
func (l ListingRecord) ConditionCategory() Condition {
	switch {
	case l.Graded:
		return ConditionGraded
	case l.Sealed:
		return ConditionSealed
	case l.Condition != "":
		return l.Condition
	default:
		return ConditionRaw
	}
}

// ProductProfile describes the target product being priced.
type ProductProfile struct {
	Name    string `json:"name"`
	SetName string `json:"set_name,omitempty"`
	// Single marks graded or ungraded single cards; sealed products
	// leave it false.
	Single bool `json:"single"`
}
