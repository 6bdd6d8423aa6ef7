package helpers

import (
	"errors"
	"testing"

	"github.com/doeshing/urlguard/internal/app"
	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/infrastructure/security"
)

func TestCheckFailOn(t *testing.T) {
	verdicts := []domain.Verdict{
		security.Classify("https://example.com"),
		security.Classify("facetime:someone"),
		security.Classify(""),
	}

	tests := []struct {
		name     string
		failOn   string
		wantExit bool
		wantErr  bool
	}{
		{name: "disabled", failOn: ""},
		{name: "high not reached", failOn: "high"},
		{name: "medium reached", failOn: "medium", wantExit: true},
		{name: "low reached", failOn: "low", wantExit: true},
		{name: "invalid tier", failOn: "severe", wantErr: true},
		{name: "unknown not allowed", failOn: "unknown", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFailOn(tt.failOn, 2, verdicts)
			var exitErr *ExitError
			isExit := errors.As(err, &exitErr)
			switch {
			case tt.wantExit:
				if !isExit || exitErr.Code != 2 {
					t.Fatalf("expected exit error, got %v", err)
				}
			case tt.wantErr:
				if err == nil || isExit {
					t.Fatalf("expected plain error, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestResolveFormat(t *testing.T) {
	container := &app.Container{Config: domain.Config{Output: domain.OutputSettings{Format: "json"}}}
	if got, _ := ResolveFormat("", container); got != "json" {
		t.Fatalf("expected config format, got %s", got)
	}
	if got, _ := ResolveFormat("text", container); got != "text" {
		t.Fatalf("expected flag format, got %s", got)
	}
	if _, err := ResolveFormat("yaml", container); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
