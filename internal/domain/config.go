package domain

// Config mirrors ~/.urlguard/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Rules               RulesSettings   `yaml:"rules"`
	Output              OutputSettings  `yaml:"output"`
	Logging             LoggingSettings `yaml:"logging"`
	Batch               BatchSettings   `yaml:"batch"`
}

// RulesSettings points at an optional custom rules file.
// An empty file means the built-in table.
type RulesSettings struct {
	File string `yaml:"file"`
}

// OutputSettings controls how verdicts are printed.
type OutputSettings struct {
	Format          string `yaml:"format"`
	Recommendations bool   `yaml:"recommendations"`
}

// LoggingSettings configures the diagnostic logger.
type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// BatchSettings configures batch classification.
type BatchSettings struct {
	Workers int `yaml:"workers"`
}

// UsesCustomRules reports whether a rules file is configured.
func (c Config) UsesCustomRules() bool {
	return c.Rules.File != ""
}
