package config

import (
	"fmt"
	"strings"

	"github.com/doeshing/urlguard/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateOutput(cfg.Output); err != nil {
		return err
	}
	if err := validateLogging(cfg.Logging); err != nil {
		return err
	}
	if cfg.Batch.Workers <= 0 {
		return fmt.Errorf("batch.workers must be > 0")
	}
	return nil
}

func validateOutput(out domain.OutputSettings) error {
	switch strings.ToLower(out.Format) {
	case domain.OutputText, domain.OutputJSON:
		return nil
	default:
		return fmt.Errorf("output.format must be text|json, got %s", out.Format)
	}
}

func validateLogging(log domain.LoggingSettings) error {
	switch strings.ToLower(log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug|info|warn|error, got %s", log.Level)
	}
	switch strings.ToLower(log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text|json, got %s", log.Format)
	}
	return nil
}
