package pipeline

import (
	"log"

	"github.com/google/uuid"

	"CollectIQ/internal/aggregate"
	"CollectIQ/internal/filter"
	"CollectIQ/internal/grading"
	"CollectIQ/internal/metrics"
	"CollectIQ/internal/model"
)

// Summary counts what happened to a batch of listings in one filter
// pass.
type Summary struct {
	RunID              string          `json:"run_id"`
	Category           filter.Category `json:"category"`
	Total              int             `json:"total"`
	Kept               int             `json:"kept"`
	RemovedSuspicious  int             `json:"removed_suspicious"`
	RemovedStatistical int             `json:"removed_statistical"`
	RemovedSemantic    int             `json:"removed_semantic"`
}

// FilterResult is what one filter pass returns: survivors plus both
// rejection partitions and the counts.
type FilterResult struct {
	FilteredData       []model.ListingRecord   `json:"filtered_data"`
	RemovedSuspicious  []model.RejectionRecord `json:"removed_suspicious"`
	RemovedStatistical []model.RejectionRecord `json:"removed_statistical"`
	Summary            Summary                 `json:"summary"`
}

// Pipeline composes the rule filter, the optional semantic classifier,
// the statistical outlier remover, the aggregator, the metrics engine,
// and the grading function. It holds no mutable state between runs;
// every method is a pure function of its input plus the configuration
// captured at construction.
type Pipeline struct {
	filter     *filter.RuleFilter
	classifier filter.Classifier
	outlierK   float64
	engine     *metrics.Engine
}

// New builds a Pipeline. A nil filter config selects the production
// tables, a nil classifier disables the semantic pass, and a
// non-positive k falls back to the standard 1.5 multiplier.
func New(cfg *filter.Config, classifier filter.Classifier, outlierK float64) *Pipeline {
	if outlierK <= 0 {
		outlierK = filter.DefaultOutlierK
	}
	return &Pipeline{
		filter:     filter.NewRuleFilter(cfg),
		classifier: classifier,
		outlierK:   outlierK,
		engine:     metrics.NewEngine(),
	}
}

// FilterPriceData runs rule filtering, the optional semantic pass, and
// statistical outlier removal, in that order.
func (p *Pipeline) FilterPriceData(listings []model.ListingRecord, profile model.ProductProfile) FilterResult {
	runID := uuid.NewString()
	cat := p.filter.Resolve(profile)

	kept, suspicious := p.filter.Filter(listings, profile)
	kept, semantic := filter.ApplySemantic(kept, p.classifier)
	suspicious = append(suspicious, semantic...)
	kept, statistical := filter.RemoveOutliers(kept, p.outlierK)

	log.Printf("[INFO] filter run %s (%s): %d listings -> %d kept, %d suspicious, %d statistical",
		runID, cat, len(listings), len(kept), len(suspicious), len(statistical))

	return FilterResult{
		FilteredData:       kept,
		RemovedSuspicious:  suspicious,
		RemovedStatistical: statistical,
		Summary: Summary{
			RunID:              runID,
			Category:           cat,
			Total:              len(listings),
			Kept:               len(kept),
			RemovedSuspicious:  len(suspicious),
			RemovedStatistical: len(statistical),
			RemovedSemantic:    len(semantic),
		},
	}
}

// Aggregate reduces filtered listings to daily price points.
func (p *Pipeline) Aggregate(listings []model.ListingRecord) []model.PricePoint {
	return aggregate.Listings(listings)
}

// ComputeMetrics derives the metric bundle from an aggregated series.
func (p *Pipeline) ComputeMetrics(series []model.PricePoint) *model.MetricsBundle {
	return p.engine.Compute(series)
}

// Grade converts a metrics bundle into an investment grade.
func (p *Pipeline) Grade(bundle *model.MetricsBundle) model.InvestmentGrade {
	return grading.Grade(bundle)
}

// Process is the full listing path: filter, then aggregate survivors
// together with any pre-aggregated export observations.
func (p *Pipeline) Process(listings []model.ListingRecord, exports []aggregate.Observation, profile model.ProductProfile) ([]model.PricePoint, FilterResult) {
	result := p.FilterPriceData(listings, profile)
	obs := aggregate.FromListings(result.FilteredData)
	obs = append(obs, exports...)
	return aggregate.Aggregate(obs), result
}
