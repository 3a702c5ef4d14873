package metrics

import (
	"math"

	"CollectIQ/internal/model"
)

// One-sided normal z-scores at 95% and 99% confidence.
const (
	z95 = 1.6449
	z99 = 2.3263
)

func computeVaRMetrics(prices, returns []float64) *model.VaRMetrics {
	m := &model.VaRMetrics{
		HistoricalVaR95: percentile(returns, 5),
		HistoricalVaR99: percentile(returns, 1),
	}

	mu := mean(returns)
	sd := stdevSample(returns)
	m.ParametricVaR95 = mu - z95*sd
	m.ParametricVaR99 = mu - z99*sd

	// Expected shortfall: mean of returns at or below the historical
	// 95% cutoff.
	var tail []float64
	for _, r := range returns {
		if r <= m.HistoricalVaR95 {
			tail = append(tail, r)
		}
	}
	m.ExpectedShortfall = mean(tail)

	current := prices[len(prices)-1]
	m.DollarVaR95 = current * math.Abs(m.HistoricalVaR95)

	return m
}
