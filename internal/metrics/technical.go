package metrics

import "CollectIQ/internal/model"

func computeTechnicalMetrics(prices []float64) *model.TechnicalMetrics {
	current := prices[len(prices)-1]

	m := &model.TechnicalMetrics{
		SMA10: sma(prices, 10),
		SMA20: sma(prices, 20),
		EMA10: ema(prices, 10),
		EMA20: ema(prices, 20),
	}
	m.SMA20Signal = maSignal(current, m.SMA20)
	m.EMA20Signal = maSignal(current, m.EMA20)

	// 20-period Bollinger bands at ±2σ.
	window := prices[len(prices)-20:]
	sd := stdevPop(window)
	m.BollingerMiddle = m.SMA20
	m.BollingerUpper = m.SMA20 + 2*sd
	m.BollingerLower = m.SMA20 - 2*sd
	if m.BollingerUpper > m.BollingerLower {
		m.BandPosition = (current - m.BollingerLower) / (m.BollingerUpper - m.BollingerLower)
	} else {
		m.BandPosition = 0.5
	}
	switch {
	case m.BandPosition > 0.8:
		m.BollingerSignal = model.SignalOverbought
	case m.BandPosition < 0.2:
		m.BollingerSignal = model.SignalOversold
	default:
		m.BollingerSignal = model.SignalNeutral
	}

	m.RSI14 = rsi(prices, 14)
	switch {
	case m.RSI14 > 70:
		m.RSISignal = model.SignalOverbought
	case m.RSI14 < 30:
		m.RSISignal = model.SignalOversold
	default:
		m.RSISignal = model.SignalNeutral
	}

	m.Momentum10Pct = momentumPct(prices, 10)
	m.Momentum20Pct = momentumPct(prices, 20)
	abs20 := m.Momentum20Pct
	if abs20 < 0 {
		abs20 = -abs20
	}
	switch {
	case abs20 > 10:
		m.TrendStrength = "strong"
	case abs20 > 5:
		m.TrendStrength = "moderate"
	default:
		m.TrendStrength = "weak"
	}

	return m
}

func maSignal(current, ma float64) string {
	if current >= ma {
		return model.SignalBullish
	}
	return model.SignalBearish
}

// sma is the simple moving average over the trailing period.
func sma(prices []float64, period int) float64 {
	if period <= 0 || len(prices) < period {
		return 0
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period)
}

// ema seeds with the SMA of the first period, then smooths forward with
// alpha = 2/(period+1).
func ema(prices []float64, period int) float64 {
	if period <= 0 || len(prices) < period {
		return 0
	}
	seed := 0.0
	for i := 0; i < period; i++ {
		seed += prices[i]
	}
	value := seed / float64(period)
	alpha := 2.0 / float64(period+1)
	for i := period; i < len(prices); i++ {
		value = alpha*prices[i] + (1-alpha)*value
	}
	return value
}

// rsi is the Wilder-smoothed relative strength index. Returns the
// neutral 50 when there is not enough data.
func rsi(prices []float64, period int) float64 {
	if period <= 0 || len(prices) < period+1 {
		return 50.0
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period + 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// momentumPct is the percentage change over the trailing period,
// clamped to the series start when the lookback exceeds the data.
func momentumPct(prices []float64, period int) float64 {
	idx := len(prices) - 1 - period
	if idx < 0 {
		idx = 0
	}
	if prices[idx] == 0 {
		return 0
	}
	return (prices[len(prices)-1]/prices[idx] - 1) * 100
}
