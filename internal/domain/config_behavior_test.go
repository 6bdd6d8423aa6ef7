package domain_test

import (
	"testing"

	"github.com/doeshing/urlguard/internal/domain"
)

// TestConfig_SetValue tests updating config values by dotted key
func TestConfig_SetValue(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantError bool
		wantValue string
	}{
		{
			name:      "sets output format",
			key:       "output.format",
			value:     "JSON",
			wantValue: "json",
		},
		{
			name:      "rejects unknown output format",
			key:       "output.format",
			value:     "xml",
			wantError: true,
		},
		{
			name:      "sets rules file",
			key:       "rules.file",
			value:     " /tmp/rules.yaml ",
			wantValue: "/tmp/rules.yaml",
		},
		{
			name:      "sets batch workers",
			key:       "batch.workers",
			value:     "8",
			wantValue: "8",
		},
		{
			name:      "rejects zero batch workers",
			key:       "batch.workers",
			value:     "0",
			wantError: true,
		},
		{
			name:      "rejects non-numeric batch workers",
			key:       "batch.workers",
			value:     "many",
			wantError: true,
		},
		{
			name:      "sets recommendations flag",
			key:       "output.recommendations",
			value:     "false",
			wantValue: "false",
		},
		{
			name:      "returns error for unknown key",
			key:       "models.default",
			value:     "x",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.Config{Output: domain.OutputSettings{Format: "text", Recommendations: true}}
			err := cfg.SetValue(tt.key, tt.value)

			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			got, err := cfg.GetValue(tt.key)
			if err != nil {
				t.Fatalf("GetValue error: %v", err)
			}
			if got != tt.wantValue {
				t.Errorf("got %s, want %s", got, tt.wantValue)
			}
		})
	}
}

func TestConfigKeysSorted(t *testing.T) {
	keys := domain.ConfigKeys()
	if len(keys) == 0 {
		t.Fatal("expected config keys")
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Fatalf("keys not sorted: %v", keys)
		}
	}
}
