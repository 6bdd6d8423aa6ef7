package domain

// Rule is a single pattern used to detect one characteristic of a URL.
// Patterns are matched case-insensitively anywhere in the input unless they
// anchor themselves.
type Rule struct {
	Pattern     string `yaml:"pattern" json:"pattern"`
	Description string `yaml:"description" json:"description"`
	Weight      int    `yaml:"weight" json:"weight"`
}

// RuleSet partitions rules into the three fixed tiers.
type RuleSet struct {
	HighRisk    []Rule `yaml:"high_risk" json:"high_risk"`
	MediumRisk  []Rule `yaml:"medium_risk" json:"medium_risk"`
	SafeSignals []Rule `yaml:"safe_signals" json:"safe_signals"`
}

// TierRules pairs a finding tier with its rules.
type TierRules struct {
	Tier  FindingTier
	Rules []Rule
}

// Tiers returns the tiers in evaluation order: high, medium, safe.
func (s RuleSet) Tiers() []TierRules {
	return []TierRules{
		{Tier: FindingHigh, Rules: s.HighRisk},
		{Tier: FindingMedium, Rules: s.MediumRisk},
		{Tier: FindingSafe, Rules: s.SafeSignals},
	}
}

// Len is the total number of rules.
func (s RuleSet) Len() int {
	return len(s.HighRisk) + len(s.MediumRisk) + len(s.SafeSignals)
}

// Empty reports whether no tier has any rule.
func (s RuleSet) Empty() bool {
	return s.Len() == 0
}

// DefaultWeight is the score contribution of a rule in the given tier.
func DefaultWeight(tier FindingTier) int {
	switch tier {
	case FindingHigh:
		return 10
	case FindingMedium:
		return 5
	case FindingSafe:
		return -2
	default:
		return 0
	}
}
