package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/infrastructure/security"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

func statusOf(report domain.HealthReport, name string) domain.HealthStatus {
	for _, check := range report.Checks {
		if check.Name == name {
			return check.Status
		}
	}
	return ""
}

func TestDoctorHealthyWithBuiltInRules(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{ConfigFormatVersion: "1"}},
		Classifier:     security.Default(),
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !report.Healthy() {
		t.Fatalf("expected healthy report, got %+v", report)
	}
	if statusOf(report, "Self test") != domain.HealthOK {
		t.Fatalf("self test not ok: %+v", report)
	}
}

func TestDoctorWarnsWhenCustomRulesDiverge(t *testing.T) {
	custom, err := security.New(domain.RuleSet{
		HighRisk: []domain.Rule{{Pattern: `^file:`, Description: "Local file"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{Rules: domain.RulesSettings{File: "/tmp/rules.yaml"}}},
		Classifier:     custom,
		RulesSource:    "/tmp/rules.yaml",
	}
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if statusOf(report, "Self test") != domain.HealthWarn {
		t.Fatalf("expected self test warning, got %+v", report)
	}
	if !report.Healthy() {
		t.Fatalf("custom rules should not make the report unhealthy: %+v", report)
	}
}

func TestDoctorWarnsWhenRulesFileMissing(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{Rules: domain.RulesSettings{File: "/nope.yaml"}}},
		Classifier:     security.Default(),
	}
	report, _ := svc.Run(context.Background())
	if statusOf(report, "Rules file") != domain.HealthWarn {
		t.Fatalf("expected rules file warning, got %+v", report)
	}
}

func TestDoctorReportsConfigFailure(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{err: errors.New("boom")},
		Classifier:     security.Default(),
	}
	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if report.Healthy() {
		t.Fatal("expected unhealthy report")
	}
}
