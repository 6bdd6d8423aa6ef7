package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/doeshing/urlguard/internal/domain"
)

func TestBuildContainerDefaults(t *testing.T) {
	c, err := BuildContainer(context.Background(), Options{ConfigPath: filepath.Join(t.TempDir(), "config.yaml")})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	if c.CustomRules {
		t.Fatal("expected built-in rules")
	}
	v, err := c.AnalyzeService.Analyze(context.Background(), "javascript:alert(1)")
	if err != nil || v.RiskTier != domain.RiskHigh {
		t.Fatalf("unexpected verdict %+v err=%v", v, err)
	}
}

func TestBuildContainerBrokenConfiguredRulesFallsBack(t *testing.T) {
	tmp := t.TempDir()
	rules := filepath.Join(tmp, "rules.yaml")
	if err := os.WriteFile(rules, []byte("rules:\n  high_risk:\n    - pattern: '('\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("rules:\n  file: "+rules+"\nlogging:\n  level: error\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := BuildContainer(context.Background(), Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	if c.CustomRules {
		t.Fatal("expected fallback to built-in rules")
	}

	if _, err := BuildContainer(context.Background(), Options{ConfigPath: cfgPath, RulesFile: rules}); err == nil {
		t.Fatal("explicit rules override should fail hard")
	}
}

func TestBuildContainerExplicitRulesMustExist(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.yaml")

	tests := []struct {
		name    string
		content *string
	}{
		{name: "missing file"},
		{name: "empty file", content: new(string)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := filepath.Join(t.TempDir(), "typo-rules.yaml")
			if tt.content != nil {
				if err := os.WriteFile(rules, []byte(*tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			c, err := BuildContainer(context.Background(), Options{ConfigPath: cfgPath, RulesFile: rules})
			if err == nil {
				t.Fatalf("expected error, got container with custom=%v", c.CustomRules)
			}
			if !strings.Contains(err.Error(), rules) {
				t.Fatalf("error should name the path: %v", err)
			}
		})
	}
}

func TestBuildContainerMissingConfiguredRulesUsesDefaults(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "config.yaml")
	body := "rules:\n  file: " + filepath.Join(tmp, "absent.yaml") + "\nlogging:\n  level: error\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := BuildContainer(context.Background(), Options{ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("BuildContainer error: %v", err)
	}
	if c.CustomRules {
		t.Fatal("expected built-in rules")
	}
}
