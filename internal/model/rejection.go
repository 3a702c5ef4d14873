package model

import "fmt"

// RejectionReason is the closed set of reasons a listing can be removed
// from the pipeline. Classification stays machine-testable; the
// human-readable rendering lives in Describe.
type RejectionReason string

const (
	ReasonPriceThreshold RejectionReason = "price_threshold"
	ReasonTitlePattern   RejectionReason = "title_pattern"
	ReasonOutlierLow     RejectionReason = "statistical_outlier_low"
	ReasonOutlierHigh    RejectionReason = "statistical_outlier_high"
	ReasonSemantic       RejectionReason = "semantic_reject"
)

// RejectionRecord pairs a rejected listing with the reason and a short
// machine-produced detail (matched pattern, group key, bound value).
type RejectionRecord struct {
	Listing ListingRecord   `json:"listing"`
	Reason  RejectionReason `json:"reason"`
	Detail  string          `json:"detail,omitempty"`
}

// Describe renders the record for reporting.
func (r RejectionRecord) Describe() string {
	if r.Detail == "" {
		return fmt.Sprintf("$%.2f %q rejected: %s", r.Listing.Price, r.Listing.Title, r.Reason)
	}
	return fmt.Sprintf("$%.2f %q rejected: %s (%s)", r.Listing.Price, r.Listing.Title, r.Reason, r.Detail)
}
