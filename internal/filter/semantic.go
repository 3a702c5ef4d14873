package filter

import "CollectIQ/internal/model"

// Verdict is a semantic classifier's judgement on a single listing.
type Verdict int

const (
	VerdictKeep Verdict = iota
	VerdictRemove
	VerdictFlag
)

// Classifier is an optional, injected capability for out-of-band
// semantic classification of listing text. Absence is the default,
// fully functional path.
type Classifier interface {
	Classify(l model.ListingRecord) (Verdict, string)
}

// ApplySemantic runs the classifier over listings. Flagged listings are
// kept; removed ones become semantic_reject records. A nil classifier
// keeps everything.
func ApplySemantic(listings []model.ListingRecord, c Classifier) ([]model.ListingRecord, []model.RejectionRecord) {
	if c == nil {
		return listings, nil
	}

	kept := make([]model.ListingRecord, 0, len(listings))
	var rejected []model.RejectionRecord
	for _, l := range listings {
		verdict, note := c.Classify(l)
		if verdict == VerdictRemove {
			rejected = append(rejected, model.RejectionRecord{
				Listing: l,
				Reason:  model.ReasonSemantic,
				Detail:  note,
			})
			continue
		}
		kept = append(kept, l)
	}
	return kept, rejected
}
