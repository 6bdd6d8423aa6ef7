package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ConfigKeys lists the dotted keys accepted by GetValue and SetValue.
func ConfigKeys() []string {
	keys := make([]string, 0, len(configFields))
	for key := range configFields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

type configField struct {
	get func(c *Config) string
	set func(c *Config, value string) error
}

var configFields = map[string]configField{
	"rules.file": {
		get: func(c *Config) string { return c.Rules.File },
		set: func(c *Config, v string) error { c.Rules.File = v; return nil },
	},
	"output.format": {
		get: func(c *Config) string { return c.Output.Format },
		set: func(c *Config, v string) error {
			v = strings.ToLower(v)
			if v != OutputText && v != OutputJSON {
				return fmt.Errorf("output.format must be %s|%s, got %s", OutputText, OutputJSON, v)
			}
			c.Output.Format = v
			return nil
		},
	},
	"output.recommendations": {
		get: func(c *Config) string { return strconv.FormatBool(c.Output.Recommendations) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("output.recommendations: %w", err)
			}
			c.Output.Recommendations = b
			return nil
		},
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) error { c.Logging.Level = strings.ToLower(v); return nil },
	},
	"logging.format": {
		get: func(c *Config) string { return c.Logging.Format },
		set: func(c *Config, v string) error { c.Logging.Format = strings.ToLower(v); return nil },
	},
	"batch.workers": {
		get: func(c *Config) string { return strconv.Itoa(c.Batch.Workers) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("batch.workers: %w", err)
			}
			if n <= 0 {
				return fmt.Errorf("batch.workers must be > 0")
			}
			c.Batch.Workers = n
			return nil
		},
	},
}

// GetValue returns the string form of a dotted config key.
func (c *Config) GetValue(key string) (string, error) {
	field, ok := configFields[key]
	if !ok {
		return "", fmt.Errorf("unknown config key %s", key)
	}
	return field.get(c), nil
}

// SetValue parses value and stores it under a dotted config key.
func (c *Config) SetValue(key, value string) error {
	field, ok := configFields[key]
	if !ok {
		return fmt.Errorf("unknown config key %s", key)
	}
	return field.set(c, strings.TrimSpace(value))
}
