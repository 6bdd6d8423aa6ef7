package helpers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/infrastructure/security"
)

func TestRenderVerdictText(t *testing.T) {
	var buf bytes.Buffer
	RenderVerdict(&buf, security.Classify("http://user@bit.ly/xyz"), true)
	out := buf.String()

	for _, want := range []string{
		"Result: HIGH RISK",
		"URL: http://user@bit.ly/xyz",
		"Score: 10",
		"- MEDIUM RISK: Shortened URL (may hide destination)",
		"- MEDIUM RISK: Credentials in URL",
		"Recommendation: Do NOT open this link.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderVerdictWithoutFindings(t *testing.T) {
	var buf bytes.Buffer
	RenderVerdict(&buf, security.Classify("plain text"), false)
	if !strings.Contains(buf.String(), "No suspicious patterns found.") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Recommendation") {
		t.Fatal("recommendation should be omitted")
	}
}

func TestRenderUnknownVerdictPrompts(t *testing.T) {
	var buf bytes.Buffer
	RenderVerdict(&buf, security.Classify("  "), true)
	if strings.TrimSpace(buf.String()) != MsgPromptForInput {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderVerdictsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	verdicts := []domain.Verdict{security.Classify("https://example.com"), security.Classify("")}
	if err := RenderVerdicts(&buf, domain.OutputJSON, verdicts, true); err != nil {
		t.Fatalf("RenderVerdicts error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first["riskTier"] != "low" || first["score"] != float64(-4) || first["inputUrl"] != "https://example.com" {
		t.Fatalf("unexpected json %v", first)
	}

	var second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	if second["riskTier"] != "unknown" || second["score"] != nil || second["message"] != domain.PromptForInput {
		t.Fatalf("unexpected json %v", second)
	}
	if findings, ok := second["findings"].([]interface{}); !ok || len(findings) != 0 {
		t.Fatalf("expected empty findings array, got %v", second["findings"])
	}
}

func TestRenderRulesListsEveryTier(t *testing.T) {
	var buf bytes.Buffer
	RenderRules(&buf, security.DefaultRuleSet())
	out := buf.String()
	for _, want := range []string{"HIGH (+10 each)", "MEDIUM (+5 each)", "SAFE (-2 each)", "^javascript:", "Legitimate domain"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
