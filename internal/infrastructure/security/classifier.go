package security

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/ports"
)

// Classifier implements the Classifier port over a compiled rule table.
// A Classifier is immutable after New and safe for concurrent use.
type Classifier struct {
	rules domain.RuleSet
	tiers []compiledTier
}

type compiledTier struct {
	tier  domain.FindingTier
	rules []compiledRule
}

type compiledRule struct {
	re   *regexp.Regexp
	rule domain.Rule
}

var defaultClassifier = sync.OnceValue(func() *Classifier {
	c, err := New(defaultRuleSet)
	if err != nil {
		panic(fmt.Sprintf("built-in rule table: %v", err))
	}
	return c
})

// Default returns the process-wide classifier built from the built-in table.
func Default() *Classifier {
	return defaultClassifier()
}

// Classify scores url with the built-in table.
func Classify(url string) domain.Verdict {
	return Default().Classify(url)
}

// New compiles a rule set. Every pattern is matched case-insensitively.
// A zero weight takes the tier default; any other weight must equal it.
func New(set domain.RuleSet) (*Classifier, error) {
	c := &Classifier{}
	for _, tier := range set.Tiers() {
		weight := domain.DefaultWeight(tier.Tier)
		compiled := compiledTier{tier: tier.Tier}
		for i, rule := range tier.Rules {
			if rule.Weight == 0 {
				rule.Weight = weight
			}
			if rule.Weight != weight {
				return nil, fmt.Errorf("%s rule %d (%s): weight must be %d, got %d", tier.Tier, i, rule.Pattern, weight, rule.Weight)
			}
			if rule.Pattern == "" {
				return nil, fmt.Errorf("%s rule %d: empty pattern", tier.Tier, i)
			}
			// (?i) applies Unicode simple folding: "ſ" matches "s", "K" (Kelvin) matches "k".
			re, err := regexp.Compile("(?i)" + rule.Pattern)
			if err != nil {
				return nil, fmt.Errorf("%s rule %d: %w", tier.Tier, i, err)
			}
			compiled.rules = append(compiled.rules, compiledRule{re: re, rule: rule})
		}
		c.tiers = append(c.tiers, compiled)
	}
	c.rules = c.ruleSet()
	return c, nil
}

// Classify implements ports.Classifier.
func (c *Classifier) Classify(url string) domain.Verdict {
	if c == nil {
		return Default().Classify(url)
	}
	input := strings.TrimSpace(url)
	if input == "" {
		return domain.UnknownVerdict()
	}

	findings := []domain.Finding{}
	score := 0
	for _, tier := range c.tiers {
		score += tier.evaluate(input, &findings)
	}

	return domain.Verdict{
		RiskTier: domain.TierForScore(score),
		Score:    &score,
		Findings: findings,
		InputURL: input,
	}
}

// Rules implements ports.Classifier. The returned set is a copy.
func (c *Classifier) Rules() domain.RuleSet {
	if c == nil {
		return Default().Rules()
	}
	return cloneRuleSet(c.rules)
}

// evaluate appends a finding for every matching rule and returns the
// summed weight.
func (t compiledTier) evaluate(input string, findings *[]domain.Finding) int {
	total := 0
	for _, r := range t.rules {
		if !r.re.MatchString(input) {
			continue
		}
		*findings = append(*findings, domain.Finding{Tier: t.tier, Message: r.rule.Description})
		total += r.rule.Weight
	}
	return total
}

func (c *Classifier) ruleSet() domain.RuleSet {
	var set domain.RuleSet
	for _, tier := range c.tiers {
		rules := make([]domain.Rule, 0, len(tier.rules))
		for _, r := range tier.rules {
			rules = append(rules, r.rule)
		}
		switch tier.tier {
		case domain.FindingHigh:
			set.HighRisk = rules
		case domain.FindingMedium:
			set.MediumRisk = rules
		case domain.FindingSafe:
			set.SafeSignals = rules
		}
	}
	return set
}

var _ ports.Classifier = (*Classifier)(nil)
