package doctor

import (
	"context"
	"fmt"

	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Classifier     ports.Classifier
	// RulesSource is the rules file the classifier was built from, empty for
	// the built-in table.
	RulesSource string
}

// SelfTestCase pairs an input with the tier the built-in table assigns it.
type SelfTestCase struct {
	Input string
	Want  domain.RiskTier
}

// SelfTestCases exercise every tier of the built-in table.
var SelfTestCases = []SelfTestCase{
	{Input: "javascript:alert(1)", Want: domain.RiskHigh},
	{Input: "https://example.com", Want: domain.RiskLow},
	{Input: "http://user@bit.ly/xyz", Want: domain.RiskHigh},
	{Input: "tel:*123#", Want: domain.RiskHigh},
	{Input: "facetime:someone", Want: domain.RiskMedium},
	{Input: "   ", Want: domain.RiskUnknown},
	{Input: "ftp://files.example.org/readme", Want: domain.RiskLow},
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded format %s", cfg.ConfigFormatVersion)))

	if s.Classifier == nil {
		checks = append(checks, fail("Rule table", "classifier not initialized"))
		return domain.HealthReport{Checks: checks}, nil
	}

	rules := s.Classifier.Rules()
	source := "built-in"
	if s.RulesSource != "" {
		source = s.RulesSource
	} else if cfg.UsesCustomRules() {
		checks = append(checks, warn("Rules file", fmt.Sprintf("%s missing, empty or invalid, using built-in table", cfg.Rules.File)))
	}
	if rules.Empty() {
		checks = append(checks, fail("Rule table", "no rules loaded"))
	} else {
		checks = append(checks, ok("Rule table", fmt.Sprintf("%s: %d high, %d medium, %d safe",
			source, len(rules.HighRisk), len(rules.MediumRisk), len(rules.SafeSignals))))
	}

	checks = append(checks, s.selfTest())

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) selfTest() domain.HealthCheck {
	var mismatches int
	for _, tc := range SelfTestCases {
		if got := s.Classifier.Classify(tc.Input).RiskTier; got != tc.Want {
			mismatches++
		}
	}
	if mismatches == 0 {
		return ok("Self test", fmt.Sprintf("%d sample URLs classified as expected", len(SelfTestCases)))
	}
	details := fmt.Sprintf("%d of %d sample URLs differ from the built-in table", mismatches, len(SelfTestCases))
	if s.RulesSource != "" {
		return warn("Self test", details)
	}
	return fail("Self test", details)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
