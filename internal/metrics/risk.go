package metrics

import (
	"math"
	"time"

	"CollectIQ/internal/model"
)

func (e *Engine) computeRiskMetrics(prices []float64, dates []time.Time, returns []float64, cagr float64) *model.RiskMetrics {
	m := &model.RiskMetrics{}

	sd := stdevSample(returns)
	if sd > 0 {
		m.SharpeRatio = (mean(returns) - e.RiskFree/periodsPerYear) / sd * math.Sqrt(periodsPerYear)
	}

	maxDD, peakIdx, troughIdx := maxDrawdown(prices)
	m.MaxDrawdown = maxDD
	if troughIdx > peakIdx {
		m.DrawdownDays = int(dates[troughIdx].Sub(dates[peakIdx]).Hours() / 24)
		peak := prices[peakIdx]
		for i := troughIdx + 1; i < len(prices); i++ {
			if prices[i] >= peak {
				days := int(dates[i].Sub(dates[troughIdx]).Hours() / 24)
				m.RecoveryDays = &days
				break
			}
		}
	}

	var losses []float64
	for _, r := range returns {
		if r < 0 {
			losses = append(losses, r)
		}
	}
	m.DownsideDeviation = stdevSample(losses) * math.Sqrt(periodsPerYear)
	if m.DownsideDeviation > 0 {
		annMean := mean(returns) * periodsPerYear
		m.SortinoRatio = (annMean - e.RiskFree) / m.DownsideDeviation
	}

	if maxDD != 0 {
		m.CalmarRatio = cagr / math.Abs(maxDD)
	}

	return m
}

// maxDrawdown returns the deepest peak-to-trough decline as a negative
// fraction, plus the running-max index where it started and the trough
// index where it bottomed.
func maxDrawdown(prices []float64) (dd float64, peakIdx, troughIdx int) {
	runningMax := prices[0]
	runningMaxIdx := 0
	for i, p := range prices {
		if p > runningMax {
			runningMax = p
			runningMaxIdx = i
		}
		d := (p - runningMax) / runningMax
		if d < dd {
			dd = d
			peakIdx = runningMaxIdx
			troughIdx = i
		}
	}
	return dd, peakIdx, troughIdx
}
