package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/urlguard/assets"
	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/pkg/filesystem"
	"github.com/doeshing/urlguard/internal/ports"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "URLGUARD_CONFIG"

// FileLoader loads YAML configuration from ~/.urlguard/config.yaml (overridable via URLGUARD_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file yields the defaults
// and nothing is written; keys absent from the file keep their default.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	data, err := os.ReadFile(l.resolvePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config: %w", err)
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Exists reports whether the config file is present on disk.
func (l *FileLoader) Exists() bool {
	_, err := os.Stat(l.resolvePath())
	return err == nil
}

// Save writes the given config back to disk.
func (l *FileLoader) Save(cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Backup copies the current config file to a timestamped backup.
func (l *FileLoader) Backup() (string, error) {
	path := l.resolvePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := fmt.Sprintf("%s.%s.bak", path, time.Now().Format("20060102T150405"))
	if err := os.WriteFile(backup, data, domain.SecureFilePermissions); err != nil {
		return "", err
	}
	return backup, nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return filesystem.ExpandHome(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandHome(custom)
	}
	return filepath.Join(filesystem.AppDir(), "config.yaml")
}

// DefaultConfig exposes the bootstrap configuration template.
func DefaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		cfg = domain.Config{}
	}
	return hydrateDefaults(cfg)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = domain.DefaultConfigFormatVersion
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = domain.OutputText
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = domain.DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = domain.DefaultLogFormat
	}
	if cfg.Batch.Workers <= 0 {
		cfg.Batch.Workers = domain.DefaultBatchWorkers
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
