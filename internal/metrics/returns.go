package metrics

import (
	"math"
	"time"

	"CollectIQ/internal/model"
)

func computeReturnMetrics(prices []float64, dates []time.Time, returns []float64) *model.ReturnMetrics {
	first, last := prices[0], prices[len(prices)-1]

	days := dates[len(dates)-1].Sub(dates[0]).Hours() / 24
	years := days / periodsPerYear
	if years < 1/periodsPerYear {
		years = 1 / periodsPerYear
	}

	m := &model.ReturnMetrics{
		TotalReturn:          last/first - 1,
		HoldingPeriodYears:   years,
		CAGR:                 math.Pow(last/first, 1/years) - 1,
		AnnualizedVolatility: stdevSample(returns) * math.Sqrt(periodsPerYear),
	}

	if len(returns) > 0 {
		best, worst := returns[0], returns[0]
		for _, r := range returns[1:] {
			if r > best {
				best = r
			}
			if r < worst {
				worst = r
			}
		}
		m.BestPeriodReturn = best
		m.WorstPeriodReturn = worst
	}

	return m
}
