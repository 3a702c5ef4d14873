package model

// Recommendation is the coarse action derived from the numeric score.
type Recommendation string

const (
	RecommendBuy   Recommendation = "BUY"
	RecommendHold  Recommendation = "HOLD"
	RecommendAvoid Recommendation = "AVOID"
)

// InvestmentGrade is the final output of the grading function.
type InvestmentGrade struct {
	Grade          string         `json:"grade"`
	Score          float64        `json:"score"`
	Reasons        []string       `json:"reasons"`
	Recommendation Recommendation `json:"recommendation"`
}
