package metrics

import (
	"time"

	"CollectIQ/internal/model"
)

func computeTimingMetrics(prices []float64, dates []time.Time) *model.TimingMetrics {
	current := prices[len(prices)-1]
	last := dates[len(dates)-1]

	window30 := trailingWindow(prices, dates, last, 30)
	window90 := trailingWindow(prices, dates, last, 90)

	m := &model.TimingMetrics{
		Position30Day: rangePosition(current, window30),
		Position90Day: rangePosition(current, window90),
		Support90Day:  percentile(window90, 25),
		Resist90Day:   percentile(window90, 75),
	}

	switch {
	case m.Position90Day < 0.3:
		m.EntrySignal = model.SignalBuy
	case m.Position90Day > 0.7:
		m.EntrySignal = model.SignalSell
	default:
		m.EntrySignal = model.SignalHold
	}
	m.TimingScore = 1 - m.Position90Day

	return m
}

func trailingWindow(prices []float64, dates []time.Time, end time.Time, days int) []float64 {
	cutoff := end.AddDate(0, 0, -days)
	out := make([]float64, 0, len(prices))
	for i, d := range dates {
		if !d.Before(cutoff) {
			out = append(out, prices[i])
		}
	}
	return out
}

// rangePosition normalizes current into the window's [low, high] range;
// a flat window sits at the midpoint.
func rangePosition(current float64, window []float64) float64 {
	if len(window) == 0 {
		return 0.5
	}
	low, high := window[0], window[0]
	for _, p := range window[1:] {
		if p < low {
			low = p
		}
		if p > high {
			high = p
		}
	}
	if high == low {
		return 0.5
	}
	return clamp01((current - low) / (high - low))
}
