package metrics

import (
	"math"

	"CollectIQ/internal/model"
)

// ProfitFactorCap is the sentinel returned when there are winning
// periods and no losing period at all.
const ProfitFactorCap = 999.0

func computePerformanceMetrics(prices, returns []float64) *model.PerformanceMetrics {
	m := &model.PerformanceMetrics{}
	if len(returns) == 0 {
		return m
	}

	var wins, losses []float64
	for _, r := range returns {
		switch {
		case r > 0:
			wins = append(wins, r)
		case r < 0:
			losses = append(losses, r)
		}
	}

	m.WinRate = float64(len(wins)) / float64(len(returns))
	m.AverageWin = mean(wins)
	m.AverageLoss = mean(losses)

	switch {
	case len(losses) == 0 && len(wins) > 0:
		m.ProfitFactor = ProfitFactorCap
	case len(losses) > 0:
		m.ProfitFactor = math.Abs(m.AverageWin * float64(len(wins)) / (m.AverageLoss * float64(len(losses))))
		if m.ProfitFactor > ProfitFactorCap {
			m.ProfitFactor = ProfitFactorCap
		}
	}

	if rm := mean(returns); rm != 0 {
		m.ReturnConsistency = clamp01(1 - stdevSample(returns)/math.Abs(rm))
	}
	if pm := mean(prices); pm > 0 {
		m.PriceStability = clamp01(1 - stdevSample(prices)/pm)
	}

	return m
}
