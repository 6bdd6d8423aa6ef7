package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/urlguard/internal/domain"
)

func TestLoadRuleSetFallsBackToDefaults(t *testing.T) {
	tmp := t.TempDir()
	empty := filepath.Join(tmp, "empty.yaml")
	if err := os.WriteFile(empty, []byte("rules: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{"", filepath.Join(tmp, "missing.yaml"), empty} {
		set, fromFile, err := LoadRuleSet(path)
		if err != nil {
			t.Fatalf("LoadRuleSet(%q) error: %v", path, err)
		}
		if fromFile {
			t.Fatalf("LoadRuleSet(%q) reported custom rules", path)
		}
		if diff := cmp.Diff(DefaultRuleSet(), set); diff != "" {
			t.Fatalf("expected defaults (-want +got):\n%s", diff)
		}
	}
}

func TestLoadRuleSetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `rules:
  high_risk:
    - pattern: '^file:'
      description: Local file scheme
  safe_signals:
    - pattern: '\.example$'
      description: Test domain
      weight: -2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, fromFile, err := NewFromFile(path)
	if err != nil {
		t.Fatalf("NewFromFile error: %v", err)
	}
	if !fromFile {
		t.Fatal("expected custom rules")
	}
	v := c.Classify("FILE:///etc/passwd")
	if v.RiskTier != domain.RiskHigh || len(v.Findings) != 1 || v.Findings[0].Message != "Local file scheme" {
		t.Fatalf("unexpected verdict %+v", v)
	}
	if got := c.Classify("https://example.com").ScoreValue(); got != 0 {
		t.Fatalf("default rules leaked into custom table, score %d", got)
	}
}

func TestLoadRuleSetErrors(t *testing.T) {
	tmp := t.TempDir()
	malformed := filepath.Join(tmp, "malformed.yaml")
	if err := os.WriteFile(malformed, []byte("rules: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadRuleSet(malformed); err == nil {
		t.Fatal("expected parse error")
	}

	badPattern := filepath.Join(tmp, "bad.yaml")
	if err := os.WriteFile(badPattern, []byte("rules:\n  medium_risk:\n    - pattern: '(['\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := NewFromFile(badPattern); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestMarshalRuleSetRoundTripsThroughLoader(t *testing.T) {
	data, err := MarshalRuleSet(DefaultRuleSet())
	if err != nil {
		t.Fatalf("MarshalRuleSet error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "exported.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	set, fromFile, err := LoadRuleSet(path)
	if err != nil || !fromFile {
		t.Fatalf("LoadRuleSet: fromFile=%v err=%v", fromFile, err)
	}
	if diff := cmp.Diff(DefaultRuleSet(), set); diff != "" {
		t.Fatalf("exported table differs (-want +got):\n%s", diff)
	}
}
