package security

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/pkg/filesystem"
)

// RulesFile is the YAML schema root.
type RulesFile struct {
	Rules domain.RuleSet `yaml:"rules"`
}

// LoadRuleSet reads a rules file. An empty path, a missing file or a file
// without rules yields the built-in table and fromFile=false.
func LoadRuleSet(path string) (set domain.RuleSet, fromFile bool, err error) {
	if path == "" {
		return DefaultRuleSet(), false, nil
	}
	data, err := os.ReadFile(ResolveRulesPath(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultRuleSet(), false, nil
		}
		return domain.RuleSet{}, false, fmt.Errorf("read rules file: %w", err)
	}
	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.RuleSet{}, false, fmt.Errorf("parse rules file: %w", err)
	}
	if file.Rules.Empty() {
		return DefaultRuleSet(), false, nil
	}
	return file.Rules, true, nil
}

// NewFromFile loads and compiles a rules file.
func NewFromFile(path string) (*Classifier, bool, error) {
	set, fromFile, err := LoadRuleSet(path)
	if err != nil {
		return nil, false, err
	}
	if !fromFile {
		return Default(), false, nil
	}
	c, err := New(set)
	if err != nil {
		return nil, false, fmt.Errorf("compile rules file: %w", err)
	}
	return c, true, nil
}

// MarshalRuleSet renders a rule set in the rules file schema.
func MarshalRuleSet(set domain.RuleSet) ([]byte, error) {
	return yaml.Marshal(RulesFile{Rules: set})
}

// ResolveRulesPath expands a leading ~/ to the user's home directory.
func ResolveRulesPath(path string) string {
	return filepath.Clean(filesystem.ExpandHome(path))
}
