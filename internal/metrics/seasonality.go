package metrics

import (
	"fmt"
	"time"

	"CollectIQ/internal/model"
)

func computeSeasonalityMetrics(dates []time.Time, returns []float64) *model.SeasonalityMetrics {
	m := &model.SeasonalityMetrics{}
	if len(returns) == 0 {
		return m
	}

	// Return i covers the step ending at dates[i+1].
	byMonth := make(map[string][]float64)
	byQuarter := make(map[string][]float64)
	for i, r := range returns {
		end := dates[i+1]
		byMonth[end.Month().String()] = append(byMonth[end.Month().String()], r)
		q := fmt.Sprintf("Q%d", (int(end.Month())-1)/3+1)
		byQuarter[q] = append(byQuarter[q], r)
	}

	m.BestMonth, m.WorstMonth, m.MonthlyVolatility = bucketStats(byMonth)
	m.BestQuarter, m.WorstQuarter, m.QuarterlyVolatility = bucketStats(byQuarter)
	m.VolatilityClustering = volatilityClustering(returns, 10)

	return m
}

// bucketStats ranks calendar buckets by mean return and reports the
// dispersion of the bucket means.
func bucketStats(buckets map[string][]float64) (best, worst string, vol float64) {
	bestMean := 0.0
	worstMean := 0.0
	first := true
	means := make([]float64, 0, len(buckets))
	for name, rs := range buckets {
		mu := mean(rs)
		means = append(means, mu)
		if first || mu > bestMean {
			bestMean = mu
			best = name
		}
		if first || mu < worstMean {
			worstMean = mu
			worst = name
		}
		first = false
	}
	return best, worst, stdevPop(means)
}

// volatilityClustering is the dispersion of a rolling window standard
// deviation: high values mean calm and turbulent stretches alternate.
func volatilityClustering(returns []float64, window int) float64 {
	if len(returns) <= window {
		return 0
	}
	rolling := make([]float64, 0, len(returns)-window+1)
	for i := 0; i+window <= len(returns); i++ {
		rolling = append(rolling, stdevPop(returns[i:i+window]))
	}
	return stdevPop(rolling)
}
