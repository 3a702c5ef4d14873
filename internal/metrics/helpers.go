package metrics

import "github.com/montanaflynn/stats"

// Thin wrappers over the stats library: an error on empty or degenerate
// input collapses to zero, which matches the "defined value, never an
// exception" contract for insufficient data.

func mean(xs []float64) float64 {
	v, err := stats.Mean(xs)
	if err != nil {
		return 0
	}
	return v
}

func median(xs []float64) float64 {
	v, err := stats.Median(xs)
	if err != nil {
		return 0
	}
	return v
}

// stdevSample is the sample standard deviation; zero below 2 samples.
func stdevSample(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	v, err := stats.StandardDeviationSample(xs)
	if err != nil {
		return 0
	}
	return v
}

// stdevPop is the population standard deviation.
func stdevPop(xs []float64) float64 {
	v, err := stats.StandardDeviation(xs)
	if err != nil {
		return 0
	}
	return v
}

func percentile(xs []float64, pct float64) float64 {
	v, err := stats.Percentile(xs, pct)
	if err != nil {
		return 0
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
