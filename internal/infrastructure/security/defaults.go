package security

import "github.com/doeshing/urlguard/internal/domain"

var defaultRuleSet = domain.RuleSet{
	HighRisk: []domain.Rule{
		{Pattern: `^poweroff:`, Description: "Non-standard poweroff: scheme", Weight: 10},
		{Pattern: `^shutdown:`, Description: "Suspicious shutdown: scheme", Weight: 10},
		{Pattern: `^javascript:`, Description: "JavaScript execution in URL", Weight: 10},
		{Pattern: `^data:`, Description: "Potentially malicious data URI", Weight: 10},
		{Pattern: `tel:.*[#*]`, Description: "USSD code in tel: link", Weight: 10},
		{Pattern: `vbscript:`, Description: "VBScript execution", Weight: 10},
	},
	MediumRisk: []domain.Rule{
		{Pattern: `^facetime:`, Description: "Scheme that launches an application", Weight: 5},
		{Pattern: `^itms-services:`, Description: "App installation scheme", Weight: 5},
		{Pattern: `bit\.ly|tinyurl|goo\.gl`, Description: "Shortened URL (may hide destination)", Weight: 5},
		{Pattern: `@`, Description: "Credentials in URL", Weight: 5},
		{Pattern: `\.(exe|msi|bat|cmd)$`, Description: "Link to executable file", Weight: 5},
	},
	SafeSignals: []domain.Rule{
		{Pattern: `^https://`, Description: "Secure HTTPS connection", Weight: -2},
		{Pattern: `\.(com|org|edu|gov)$`, Description: "Legitimate domain", Weight: -2},
	},
}

// DefaultRuleSet returns a copy of the built-in rule table.
func DefaultRuleSet() domain.RuleSet {
	return cloneRuleSet(defaultRuleSet)
}

func cloneRuleSet(set domain.RuleSet) domain.RuleSet {
	return domain.RuleSet{
		HighRisk:    append([]domain.Rule(nil), set.HighRisk...),
		MediumRisk:  append([]domain.Rule(nil), set.MediumRisk...),
		SafeSignals: append([]domain.Rule(nil), set.SafeSignals...),
	}
}
