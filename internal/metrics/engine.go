package metrics

import (
	"math"
	"sort"
	"time"

	"CollectIQ/internal/model"
)

const (
	// periodsPerYear annualizes daily statistics on calendar days.
	periodsPerYear = 365.25

	// DefaultRiskFreeRate is the annual risk-free rate used by Sharpe
	// and Sortino when the engine is built with NewEngine.
	DefaultRiskFreeRate = 0.02

	minTechnicalPoints   = 20
	minVaRSamples        = 10
	minDistributionSamps = 10
	minSeasonalityPoints = 30
	minTimingPoints      = 20
)

// Engine computes the metric bundle from an aggregated price series.
type Engine struct {
	RiskFree float64
}

// NewEngine creates an Engine with the default risk-free rate.
func NewEngine() *Engine {
	return &Engine{RiskFree: DefaultRiskFreeRate}
}

// Compute derives all metric groups from the series. The series is
// sorted ascending by date before any computation; duplicate dates are
// separate samples. Fewer than 2 usable points yields the empty bundle,
// and each group is independently gated by its own minimum-sample
// requirement.
func (e *Engine) Compute(series []model.PricePoint) *model.MetricsBundle {
	bundle := &model.MetricsBundle{ComputedAt: time.Now()}
	if len(series) < 2 {
		return bundle
	}

	sorted := make([]model.PricePoint, len(series))
	copy(sorted, series)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	// Drop prices that would produce non-finite returns.
	prices := make([]float64, 0, len(sorted))
	dates := make([]time.Time, 0, len(sorted))
	for _, p := range sorted {
		if p.Price <= 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			continue
		}
		prices = append(prices, p.Price)
		dates = append(dates, p.Date)
	}
	if len(prices) < 2 {
		return bundle
	}

	returns := periodReturns(prices)
	bundle.SampleCount = len(prices)

	bundle.Returns = computeReturnMetrics(prices, dates, returns)
	bundle.Risk = e.computeRiskMetrics(prices, dates, returns, bundle.Returns.CAGR)
	bundle.Performance = computePerformanceMetrics(prices, returns)
	if len(prices) >= minTechnicalPoints {
		bundle.Technical = computeTechnicalMetrics(prices)
	}
	if len(returns) >= minVaRSamples {
		bundle.ValueAtRisk = computeVaRMetrics(prices, returns)
	}
	if len(returns) >= minDistributionSamps {
		bundle.Distribution = computeDistributionMetrics(returns)
	}
	if len(prices) >= minSeasonalityPoints {
		bundle.Seasonality = computeSeasonalityMetrics(dates, returns)
	}
	if len(prices) >= minTimingPoints {
		bundle.Timing = computeTimingMetrics(prices, dates)
	}

	return bundle
}

// periodReturns computes per-step simple returns, dropping any
// non-finite value.
func periodReturns(prices []float64) []float64 {
	out := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		r := prices[i]/prices[i-1] - 1
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		out = append(out, r)
	}
	return out
}
