package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"CollectIQ/internal/model"
)

func TestFormatGradeReport(t *testing.T) {
	bundle := &model.MetricsBundle{
		Returns:     &model.ReturnMetrics{TotalReturn: 0.25, CAGR: 0.12, AnnualizedVolatility: 0.3},
		Risk:        &model.RiskMetrics{SharpeRatio: 1.2, MaxDrawdown: -0.15, DrawdownDays: 4},
		Performance: &model.PerformanceMetrics{WinRate: 0.6, ProfitFactor: 2.5},
		SampleCount: 45,
	}
	grade := model.InvestmentGrade{
		Grade:          "B+",
		Score:          70,
		Reasons:        []string{"returns: CAGR 12.0% (20/25)"},
		Recommendation: model.RecommendBuy,
	}

	out := FormatGradeReport("Evolving Skies Booster Box", bundle, grade)

	assert.Contains(t, out, "Evolving Skies Booster Box")
	assert.Contains(t, out, "Samples: 45 price points")
	assert.Contains(t, out, "CAGR: +12.0%")
	assert.Contains(t, out, "Sharpe: 1.20")
	assert.Contains(t, out, "Win rate: 60%")
	assert.Contains(t, out, "Grade: B+ (70/100) -> BUY")
}

func TestFormatGradeReport_EmptyBundle(t *testing.T) {
	grade := model.InvestmentGrade{
		Grade:          "F",
		Score:          0,
		Reasons:        []string{"insufficient price history to grade"},
		Recommendation: model.RecommendAvoid,
	}

	out := FormatGradeReport("Unknown Product", &model.MetricsBundle{}, grade)

	assert.Contains(t, out, "Insufficient price history")
	assert.Contains(t, out, "Grade: F (0/100) -> AVOID")
}

func TestFormatFilterSummary(t *testing.T) {
	samples := make([]model.RejectionRecord, 7)
	for i := range samples {
		samples[i] = model.RejectionRecord{
			Listing: model.ListingRecord{Title: "Empty Booster Box", Price: 12},
			Reason:  model.ReasonTitlePattern,
			Detail:  `\bempty\b`,
		}
	}

	out := FormatFilterSummary(20, 12, 7, 1, samples)

	assert.Contains(t, out, "Filtered 20 listings: kept 12, rejected 7 suspicious, 1 statistical outliers")
	assert.Contains(t, out, samples[0].Describe())
	assert.Contains(t, out, "...")
}
