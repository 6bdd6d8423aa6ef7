package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/urlguard/internal/domain"
)

// MsgPromptForInput is shown for empty input instead of a score.
const MsgPromptForInput = "Please enter a URL to analyze."

// TierLabel is the display label for a risk tier.
func TierLabel(tier domain.RiskTier) string {
	switch tier {
	case domain.RiskHigh:
		return "HIGH RISK"
	case domain.RiskMedium:
		return "MEDIUM RISK"
	case domain.RiskLow:
		return "LOW RISK"
	default:
		return "UNKNOWN"
	}
}

// FindingLabel prefixes a finding message.
func FindingLabel(tier domain.FindingTier) string {
	switch tier {
	case domain.FindingHigh:
		return "HIGH RISK"
	case domain.FindingMedium:
		return "MEDIUM RISK"
	default:
		return "SAFE"
	}
}

// Recommendation is the advice printed under a verdict.
func Recommendation(tier domain.RiskTier) string {
	switch tier {
	case domain.RiskHigh:
		return "Do NOT open this link. It could be malicious."
	case domain.RiskMedium:
		return "Be careful. Verify the source before opening."
	case domain.RiskLow:
		return "This link looks safe, but always verify the source."
	default:
		return ""
	}
}

// RenderVerdict prints a verdict in a friendly, ASCII-only format.
func RenderVerdict(out io.Writer, v domain.Verdict, recommend bool) {
	if v.RiskTier == domain.RiskUnknown {
		fmt.Fprintln(out, MsgPromptForInput)
		return
	}

	fmt.Fprintf(out, "Result: %s\n", TierLabel(v.RiskTier))
	fmt.Fprintf(out, "URL: %s\n", v.InputURL)
	fmt.Fprintf(out, "Score: %d\n", v.ScoreValue())

	fmt.Fprintln(out, "Findings:")
	if len(v.Findings) == 0 {
		fmt.Fprintln(out, "  No suspicious patterns found.")
	}
	for _, f := range v.Findings {
		fmt.Fprintf(out, "  - %s: %s\n", FindingLabel(f.Tier), f.Message)
	}

	if recommend {
		fmt.Fprintf(out, "Recommendation: %s\n", Recommendation(v.RiskTier))
	}
}

// RenderVerdicts prints verdicts as text blocks or JSON lines.
func RenderVerdicts(out io.Writer, format string, verdicts []domain.Verdict, recommend bool) error {
	if format == domain.OutputJSON {
		enc := json.NewEncoder(out)
		for _, v := range verdicts {
			if err := enc.Encode(v); err != nil {
				return err
			}
		}
		return nil
	}
	for i, v := range verdicts {
		if i > 0 {
			fmt.Fprintln(out)
		}
		RenderVerdict(out, v, recommend)
	}
	return nil
}

// RenderSummary prints per-tier counts.
func RenderSummary(out io.Writer, summary domain.BatchSummary) {
	fmt.Fprintf(out, "\nAnalyzed %d input(s): %d high, %d medium, %d low, %d empty\n",
		summary.Total,
		summary.ByTier[domain.RiskHigh],
		summary.ByTier[domain.RiskMedium],
		summary.ByTier[domain.RiskLow],
		summary.ByTier[domain.RiskUnknown])
}

// RenderRules lists a rule table grouped by tier.
func RenderRules(out io.Writer, set domain.RuleSet) {
	for _, tier := range set.Tiers() {
		fmt.Fprintf(out, "%s (%+d each)\n", strings.ToUpper(string(tier.Tier)), domain.DefaultWeight(tier.Tier))
		if len(tier.Rules) == 0 {
			fmt.Fprintln(out, "  (none)")
		}
		for _, rule := range tier.Rules {
			fmt.Fprintf(out, "  %-26s %s\n", rule.Pattern, rule.Description)
		}
	}
}

// RenderHealth displays the health check report.
func RenderHealth(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n",
			strings.ToUpper(string(check.Status)),
			check.Name,
			check.Details)
	}
}
