package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/urlguard/internal/application/analyze"
	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/infrastructure/cli/helpers"
)

// NewBatchCommand classifies one candidate URL per line of a file or stdin.
func NewBatchCommand(load helpers.ContainerFunc) *cobra.Command {
	var (
		output string
		failOn string
	)

	cmd := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Classify one URL per line from a file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := load(cmd.Context())
			if err != nil {
				return err
			}
			if container.AnalyzeService == nil {
				return errors.New(ErrAnalyzeServiceUnavailable)
			}
			format, err := helpers.ResolveFormat(output, container)
			if err != nil {
				return err
			}

			inputs, err := readBatchSource(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			verdicts, err := container.AnalyzeService.AnalyzeBatch(cmd.Context(), inputs)
			if err != nil {
				return fmt.Errorf("batch analyze: %w", err)
			}

			out := cmd.OutOrStdout()
			if err := helpers.RenderVerdicts(out, format, verdicts, container.Config.Output.Recommendations); err != nil {
				return err
			}
			if format == domain.OutputText {
				helpers.RenderSummary(out, analyze.Summarize(verdicts))
			}
			return helpers.CheckFailOn(failOn, ExitCodeRiskThreshold, verdicts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: text|json (default from config)")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Exit with status 2 when any input reaches this tier (low|medium|high)")
	return cmd
}

func readBatchSource(stdin io.Reader, path string) ([]string, error) {
	if path == "-" {
		return analyze.ReadInputs(stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer file.Close()
	return analyze.ReadInputs(file)
}
