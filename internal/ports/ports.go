// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core (analyze, doctor) depends on these abstractions while
// the infrastructure layer (rule engine, config loader, logger) provides the
// adapters. The classifier port is deliberately small: a single pure
// operation plus read access to the active rule table.
package ports

import (
	"context"

	"github.com/doeshing/urlguard/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.urlguard/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Classifier scores a single URL string against a rule table.
// Classify never fails; empty input yields an unknown verdict.
type Classifier interface {
	Classify(url string) domain.Verdict
	Rules() domain.RuleSet
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr text, JSON lines).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
