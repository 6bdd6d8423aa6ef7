package helpers

import (
	"context"
	"fmt"

	"github.com/doeshing/urlguard/internal/app"
	"github.com/doeshing/urlguard/internal/domain"
)

// ContainerFunc lazily builds the container once flags are parsed.
type ContainerFunc func(context.Context) (*app.Container, error)

// ExitError carries a process exit code through cobra.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ResolveFormat picks the flag value over the configured format.
func ResolveFormat(flagValue string, container *app.Container) (string, error) {
	format := flagValue
	if format == "" {
		format = container.Config.Output.Format
	}
	switch format {
	case "", "text":
		return "text", nil
	case "json":
		return "json", nil
	default:
		return "", fmt.Errorf("unsupported output format %q (text|json)", format)
	}
}

// CheckFailOn returns an ExitError with code when any verdict reaches the
// failOn tier. An empty failOn disables the check.
func CheckFailOn(failOn string, code int, verdicts []domain.Verdict) error {
	if failOn == "" {
		return nil
	}
	threshold, ok := domain.ParseRiskTier(failOn)
	if !ok || threshold == domain.RiskUnknown {
		return fmt.Errorf("--fail-on must be low|medium|high, got %s", failOn)
	}
	var hits int
	for _, v := range verdicts {
		if v.RiskTier != domain.RiskUnknown && v.RiskTier.AtLeast(threshold) {
			hits++
		}
	}
	if hits == 0 {
		return nil
	}
	return &ExitError{Code: code, Err: fmt.Errorf("%d input(s) at or above %s risk", hits, threshold)}
}
