package model

import "time"

// Signal labels for technical and timing metrics.
const (
	SignalBullish    = "bullish"
	SignalBearish    = "bearish"
	SignalOverbought = "overbought"
	SignalOversold   = "oversold"
	SignalNeutral    = "neutral"
	SignalBuy        = "buy"
	SignalSell       = "sell"
	SignalHold       = "hold"
)

// ReturnMetrics covers total/annualized growth and raw volatility.
type ReturnMetrics struct {
	TotalReturn          float64 `json:"total_return"`
	HoldingPeriodYears   float64 `json:"holding_period_years"`
	CAGR                 float64 `json:"cagr"`
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	BestPeriodReturn     float64 `json:"best_period_return"`
	WorstPeriodReturn    float64 `json:"worst_period_return"`
}

// RiskMetrics covers risk-adjusted performance and drawdown shape.
type RiskMetrics struct {
	SharpeRatio       float64 `json:"sharpe_ratio"`
	MaxDrawdown       float64 `json:"max_drawdown"`
	DrawdownDays      int     `json:"drawdown_days"`
	RecoveryDays      *int    `json:"recovery_days,omitempty"`
	DownsideDeviation float64 `json:"downside_deviation"`
	SortinoRatio      float64 `json:"sortino_ratio"`
	CalmarRatio       float64 `json:"calmar_ratio"`
}

// PerformanceMetrics covers win/loss structure and consistency.
type PerformanceMetrics struct {
	WinRate           float64 `json:"win_rate"`
	AverageWin        float64 `json:"average_win"`
	AverageLoss       float64 `json:"average_loss"`
	ProfitFactor      float64 `json:"profit_factor"`
	ReturnConsistency float64 `json:"return_consistency"`
	PriceStability    float64 `json:"price_stability"`
}

// TechnicalMetrics covers moving averages, bands, RSI, and momentum.
type TechnicalMetrics struct {
	SMA10           float64 `json:"sma_10"`
	SMA20           float64 `json:"sma_20"`
	SMA20Signal     string  `json:"sma_20_signal"`
	EMA10           float64 `json:"ema_10"`
	EMA20           float64 `json:"ema_20"`
	EMA20Signal     string  `json:"ema_20_signal"`
	BollingerUpper  float64 `json:"bollinger_upper"`
	BollingerMiddle float64 `json:"bollinger_middle"`
	BollingerLower  float64 `json:"bollinger_lower"`
	BandPosition    float64 `json:"band_position"`
	BollingerSignal string  `json:"bollinger_signal"`
	RSI14           float64 `json:"rsi_14"`
	RSISignal       string  `json:"rsi_signal"`
	Momentum10Pct   float64 `json:"momentum_10_pct"`
	Momentum20Pct   float64 `json:"momentum_20_pct"`
	TrendStrength   string  `json:"trend_strength"`
}

// VaRMetrics covers historical and parametric value-at-risk.
type VaRMetrics struct {
	HistoricalVaR95   float64 `json:"historical_var_95"`
	HistoricalVaR99   float64 `json:"historical_var_99"`
	ParametricVaR95   float64 `json:"parametric_var_95"`
	ParametricVaR99   float64 `json:"parametric_var_99"`
	ExpectedShortfall float64 `json:"expected_shortfall"`
	DollarVaR95       float64 `json:"dollar_var_95"`
}

// DistributionMetrics covers the shape of the return distribution.
type DistributionMetrics struct {
	MeanReturn        float64 `json:"mean_return"`
	MedianReturn      float64 `json:"median_return"`
	StdDevReturn      float64 `json:"std_dev_return"`
	Skewness          float64 `json:"skewness"`
	ExcessKurtosis    float64 `json:"excess_kurtosis"`
	NormalityPValue   float64 `json:"normality_p_value"`
	Autocorrelation   float64 `json:"autocorrelation_lag1"`
	DistributionLabel string  `json:"distribution_label"`
}

// SeasonalityMetrics covers calendar effects and volatility clustering.
type SeasonalityMetrics struct {
	BestMonth            string  `json:"best_month"`
	WorstMonth           string  `json:"worst_month"`
	BestQuarter          string  `json:"best_quarter"`
	WorstQuarter         string  `json:"worst_quarter"`
	MonthlyVolatility    float64 `json:"monthly_volatility"`
	QuarterlyVolatility  float64 `json:"quarterly_volatility"`
	VolatilityClustering float64 `json:"volatility_clustering"`
}

// TimingMetrics covers range position and the entry signal.
type TimingMetrics struct {
	Position30Day float64 `json:"position_30_day"`
	Position90Day float64 `json:"position_90_day"`
	Support90Day  float64 `json:"support_90_day"`
	Resist90Day   float64 `json:"resistance_90_day"`
	EntrySignal   string  `json:"entry_signal"`
	TimingScore   float64 `json:"timing_score"`
}

// MetricsBundle is the full metric set for one price series. A nil
// group means its minimum-sample gate was not met; that is a defined
// value, not a failure.
type MetricsBundle struct {
	Returns      *ReturnMetrics       `json:"returns,omitempty"`
	Risk         *RiskMetrics         `json:"risk,omitempty"`
	Performance  *PerformanceMetrics  `json:"performance,omitempty"`
	Technical    *TechnicalMetrics    `json:"technical,omitempty"`
	ValueAtRisk  *VaRMetrics          `json:"value_at_risk,omitempty"`
	Distribution *DistributionMetrics `json:"distribution,omitempty"`
	Seasonality  *SeasonalityMetrics  `json:"seasonality,omitempty"`
	Timing       *TimingMetrics       `json:"timing,omitempty"`
	SampleCount  int                  `json:"sample_count"`
	ComputedAt   time.Time            `json:"computed_at"`
}

// Empty reports whether every metric group is unpopulated.
func (b *MetricsBundle) Empty() bool {
	if b == nil {
		return true
	}
	return b.Returns == nil && b.Risk == nil && b.Performance == nil &&
		b.Technical == nil && b.ValueAtRisk == nil && b.Distribution == nil &&
		b.Seasonality == nil && b.Timing == nil
}
