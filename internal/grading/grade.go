package grading

import (
	"fmt"

	"CollectIQ/internal/model"
)

// gradeScale maps the 0-100 score to the 13-step letter scale. Ordered
// highest first; the first entry whose MinScore the score reaches wins.
var gradeScale = []struct {
	MinScore float64
	Grade    string
}{
	{85, "A+"},
	{80, "A"},
	{75, "A-"},
	{70, "B+"},
	{65, "B"},
	{60, "B-"},
	{55, "C+"},
	{50, "C"},
	{45, "C-"},
	{40, "D+"},
	{35, "D"},
	{30, "D-"},
}

func mapGrade(score float64) string {
	for _, g := range gradeScale {
		if score >= g.MinScore {
			return g.Grade
		}
	}
	return "F"
}

// Grade allocates up to 25 points each across returns, risk,
// performance, and technical components, then maps the sum to a letter
// grade and a coarse recommendation. An empty bundle grades F/0 with a
// single insufficient-data reason: a defined terminal state, not an
// error.
func Grade(bundle *model.MetricsBundle) model.InvestmentGrade {
	if bundle.Empty() {
		return model.InvestmentGrade{
			Grade:          "F",
			Score:          0,
			Reasons:        []string{"insufficient price history to grade"},
			Recommendation: model.RecommendAvoid,
		}
	}

	var score float64
	var reasons []string

	pts, reason := scoreReturns(bundle.Returns)
	score += pts
	reasons = append(reasons, reason)

	pts, reason = scoreRisk(bundle.Risk)
	score += pts
	reasons = append(reasons, reason)

	pts, reason = scorePerformance(bundle.Performance)
	score += pts
	reasons = append(reasons, reason)

	pts, reason = scoreTechnical(bundle.Technical, bundle.Timing)
	score += pts
	reasons = append(reasons, reason)

	var rec model.Recommendation
	switch {
	case score >= 70:
		rec = model.RecommendBuy
	case score >= 50:
		rec = model.RecommendHold
	default:
		rec = model.RecommendAvoid
	}

	return model.InvestmentGrade{
		Grade:          mapGrade(score),
		Score:          score,
		Reasons:        reasons,
		Recommendation: rec,
	}
}

func scoreReturns(m *model.ReturnMetrics) (float64, string) {
	if m == nil {
		return 0, "returns: no data (0/25)"
	}
	cagr := m.CAGR * 100
	var pts float64
	switch {
	case cagr > 15:
		pts = 25
	case cagr > 8:
		pts = 20
	case cagr > 0:
		pts = 10
	}
	return pts, fmt.Sprintf("returns: CAGR %.1f%% (%.0f/25)", cagr, pts)
}

func scoreRisk(m *model.RiskMetrics) (float64, string) {
	if m == nil {
		return 0, "risk: no data (0/25)"
	}
	var pts float64
	switch {
	case m.SharpeRatio > 1.5:
		pts = 25
	case m.SharpeRatio > 1.0:
		pts = 20
	case m.SharpeRatio > 0.5:
		pts = 10
	}
	return pts, fmt.Sprintf("risk: Sharpe %.2f (%.0f/25)", m.SharpeRatio, pts)
}

func scorePerformance(m *model.PerformanceMetrics) (float64, string) {
	if m == nil {
		return 0, "performance: no data (0/25)"
	}
	winPct := m.WinRate * 100
	var pts float64
	switch {
	case winPct > 70:
		pts = 25
	case winPct > 60:
		pts = 20
	case winPct > 50:
		pts = 10
	}
	return pts, fmt.Sprintf("performance: win rate %.0f%% (%.0f/25)", winPct, pts)
}

// scoreTechnical counts bullish-leaning signals among the 20-period
// SMA, the 20-period EMA, RSI not overbought, and a buy entry signal.
func scoreTechnical(m *model.TechnicalMetrics, timing *model.TimingMetrics) (float64, string) {
	if m == nil {
		return 0, "technical: no data (0/25)"
	}
	bullish := 0
	if m.SMA20Signal == model.SignalBullish {
		bullish++
	}
	if m.EMA20Signal == model.SignalBullish {
		bullish++
	}
	if m.RSISignal != model.SignalOverbought {
		bullish++
	}
	if timing != nil && timing.EntrySignal == model.SignalBuy {
		bullish++
	}
	var pts float64
	switch {
	case bullish >= 3:
		pts = 25
	case bullish >= 2:
		pts = 15
	case bullish >= 1:
		pts = 5
	}
	return pts, fmt.Sprintf("technical: %d bullish signals (%.0f/25)", bullish, pts)
}
