package app

import (
	"context"
	"fmt"

	"github.com/doeshing/urlguard/internal/application/analyze"
	"github.com/doeshing/urlguard/internal/application/doctor"
	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/infrastructure/config"
	"github.com/doeshing/urlguard/internal/infrastructure/security"
	"github.com/doeshing/urlguard/internal/pkg/logger"
	"github.com/doeshing/urlguard/internal/ports"
)

// Options tune container construction.
type Options struct {
	ConfigPath string
	// RulesFile overrides rules.file from the config.
	RulesFile string
	Verbose   bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Classifier     ports.Classifier
	CustomRules    bool
	AnalyzeService *analyze.Service
	DoctorService  *doctor.Service
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if opts.RulesFile != "" {
		cfg.Rules.File = opts.RulesFile
	}

	level := cfg.Logging.Level
	if opts.Verbose {
		level = "debug"
	}
	log := logger.New(nil, level, cfg.Logging.Format)

	classifier, custom, err := security.NewFromFile(cfg.Rules.File)
	if err != nil {
		if opts.RulesFile != "" {
			return nil, err
		}
		log.Warn("rules file unusable, falling back to built-in table", map[string]interface{}{
			"path":  cfg.Rules.File,
			"error": err.Error(),
		})
		classifier, custom = security.Default(), false
	}
	if opts.RulesFile != "" && !custom {
		return nil, fmt.Errorf("rules file %s not found or empty", opts.RulesFile)
	}
	log.Debug("rule table ready", map[string]interface{}{
		"custom": custom,
		"rules":  classifier.Rules().Len(),
	})

	var rulesSource string
	if custom {
		rulesSource = cfg.Rules.File
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Classifier:     classifier,
		CustomRules:    custom,
		AnalyzeService: &analyze.Service{
			Classifier: classifier,
			Logger:     log,
			Workers:    cfg.Batch.Workers,
		},
		DoctorService: &doctor.Service{
			ConfigProvider: cfgLoader,
			Classifier:     classifier,
			RulesSource:    rulesSource,
		},
		Logger: log,
	}, nil
}
