package metrics

import (
	"math"

	"github.com/montanaflynn/stats"

	"CollectIQ/internal/model"
)

func computeDistributionMetrics(returns []float64) *model.DistributionMetrics {
	m := &model.DistributionMetrics{
		MeanReturn:   mean(returns),
		MedianReturn: median(returns),
		StdDevReturn: stdevSample(returns),
	}

	m.Skewness, m.ExcessKurtosis = momentShape(returns)
	m.NormalityPValue = jarqueBeraP(len(returns), m.Skewness, m.ExcessKurtosis)

	if ac, err := stats.AutoCorrelation(returns, 1); err == nil {
		m.Autocorrelation = ac
	}

	switch {
	case m.NormalityPValue > 0.05:
		m.DistributionLabel = "normal"
	case m.ExcessKurtosis > 3:
		m.DistributionLabel = "fat-tailed"
	default:
		m.DistributionLabel = "thin-tailed"
	}

	return m
}

// momentShape computes skewness and excess kurtosis from central
// moments. The stats library does not ship either.
func momentShape(xs []float64) (skew, excessKurt float64) {
	n := float64(len(xs))
	if n < 3 {
		return 0, 0
	}
	mu := mean(xs)
	var m2, m3, m4 float64
	for _, x := range xs {
		d := x - mu
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m3 /= n
	m4 /= n
	if m2 == 0 {
		return 0, 0
	}
	skew = m3 / math.Pow(m2, 1.5)
	excessKurt = m4/(m2*m2) - 3
	return skew, excessKurt
}

// jarqueBeraP is the Jarque-Bera normality test p-value. The statistic
// is asymptotically chi-squared with 2 degrees of freedom, whose
// survival function is exactly exp(-x/2).
func jarqueBeraP(n int, skew, excessKurt float64) float64 {
	if n < 3 {
		return 1
	}
	jb := float64(n) / 6 * (skew*skew + excessKurt*excessKurt/4)
	return math.Exp(-jb / 2)
}
