package domain

// RiskTier summarizes the outcome of scoring a URL.
type RiskTier string

const (
	RiskUnknown RiskTier = "unknown"
	RiskLow     RiskTier = "low"
	RiskMedium  RiskTier = "medium"
	RiskHigh    RiskTier = "high"
)

// FindingTier is the severity tier of the rule that produced a finding.
type FindingTier string

const (
	FindingHigh   FindingTier = "high"
	FindingMedium FindingTier = "medium"
	FindingSafe   FindingTier = "safe"
)

// Score thresholds, checked from the top.
const (
	HighRiskThreshold   = 10
	MediumRiskThreshold = 5
)

// PromptForInput is the verdict message for empty input.
const PromptForInput = "prompt for input"

// Finding records one matched rule.
type Finding struct {
	Tier    FindingTier `json:"tier"`
	Message string      `json:"message"`
}

// Verdict is the result of classifying a single string.
type Verdict struct {
	RiskTier RiskTier  `json:"riskTier"`
	Score    *int      `json:"score"`
	Findings []Finding `json:"findings"`
	InputURL string    `json:"inputUrl"`
	Message  string    `json:"message,omitempty"`
}

// UnknownVerdict is returned for empty or whitespace-only input.
func UnknownVerdict() Verdict {
	return Verdict{
		RiskTier: RiskUnknown,
		Findings: []Finding{},
		Message:  PromptForInput,
	}
}

// HasScore reports whether rules were evaluated.
func (v Verdict) HasScore() bool {
	return v.Score != nil
}

// ScoreValue returns the score, or 0 when absent.
func (v Verdict) ScoreValue() int {
	if v.Score == nil {
		return 0
	}
	return *v.Score
}

// TierForScore maps a score to its risk tier.
func TierForScore(score int) RiskTier {
	switch {
	case score >= HighRiskThreshold:
		return RiskHigh
	case score >= MediumRiskThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// AtLeast reports whether t is as severe as other. Unknown ranks below low.
func (t RiskTier) AtLeast(other RiskTier) bool {
	return riskRank(t) >= riskRank(other)
}

// ParseRiskTier accepts the lowercase tier names.
func ParseRiskTier(value string) (RiskTier, bool) {
	switch RiskTier(value) {
	case RiskUnknown, RiskLow, RiskMedium, RiskHigh:
		return RiskTier(value), true
	default:
		return "", false
	}
}

func riskRank(t RiskTier) int {
	order := map[RiskTier]int{
		RiskUnknown: 0,
		RiskLow:     1,
		RiskMedium:  2,
		RiskHigh:    3,
	}
	return order[t]
}

// BatchSummary counts verdicts per tier.
type BatchSummary struct {
	Total  int              `json:"total"`
	ByTier map[RiskTier]int `json:"by_tier"`
}
