package report

import (
	"fmt"
	"strings"
	"time"

	"CollectIQ/internal/model"
)

// FormatGradeReport renders the metric highlights and the investment
// grade as a plain-text report for the log and CLI.
func FormatGradeReport(product string, bundle *model.MetricsBundle, grade model.InvestmentGrade) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("CollectIQ report | %s | %s\n\n", product, time.Now().Format("2006-01-02")))

	if bundle.Empty() {
		b.WriteString("Insufficient price history: no metrics computed.\n")
	} else {
		b.WriteString(fmt.Sprintf("Samples: %d price points\n", bundle.SampleCount))
		if m := bundle.Returns; m != nil {
			b.WriteString(fmt.Sprintf("Total return: %+.1f%% | CAGR: %+.1f%% | Volatility: %.1f%%\n",
				m.TotalReturn*100, m.CAGR*100, m.AnnualizedVolatility*100))
		}
		if m := bundle.Risk; m != nil {
			b.WriteString(fmt.Sprintf("Sharpe: %.2f | Max drawdown: %.1f%% (%d days)\n",
				m.SharpeRatio, m.MaxDrawdown*100, m.DrawdownDays))
		}
		if m := bundle.Performance; m != nil {
			b.WriteString(fmt.Sprintf("Win rate: %.0f%% | Profit factor: %.2f\n",
				m.WinRate*100, m.ProfitFactor))
		}
		if m := bundle.Technical; m != nil {
			b.WriteString(fmt.Sprintf("SMA20: %s | RSI: %.0f (%s) | Trend: %s\n",
				m.SMA20Signal, m.RSI14, m.RSISignal, m.TrendStrength))
		}
		if m := bundle.Timing; m != nil {
			b.WriteString(fmt.Sprintf("90-day range position: %.0f%% | Entry: %s\n",
				m.Position90Day*100, m.EntrySignal))
		}
	}

	b.WriteString("\nScore breakdown:\n")
	for _, r := range grade.Reasons {
		b.WriteString(fmt.Sprintf("  %s\n", r))
	}
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("Grade: %s (%.0f/100) -> %s\n", grade.Grade, grade.Score, grade.Recommendation))

	return b.String()
}

// FormatFilterSummary renders a short one-paragraph rejection summary.
func FormatFilterSummary(total, kept, suspicious, statistical int, samples []model.RejectionRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Filtered %d listings: kept %d, rejected %d suspicious, %d statistical outliers\n",
		total, kept, suspicious, statistical))
	for i, r := range samples {
		if i >= 5 {
			b.WriteString("  ...\n")
			break
		}
		b.WriteString("  " + r.Describe() + "\n")
	}
	return b.String()
}
