package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/doeshing/urlguard/internal/application/analyze"
	"github.com/doeshing/urlguard/internal/infrastructure/cli/helpers"
)

// NewDemoCommand classifies the built-in sample URLs.
func NewDemoCommand(load helpers.ContainerFunc) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Classify a set of sample URLs",
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
			verdicts, err := container.AnalyzeService.AnalyzeBatch(cmd.Context(), analyze.DemoInputs)
			if err != nil {
				return err
			}
			return helpers.RenderVerdicts(cmd.OutOrStdout(), format, verdicts, container.Config.Output.Recommendations)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: text|json (default from config)")
	return cmd
}
