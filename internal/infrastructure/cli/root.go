package cli

import (
	"context"
	"errors"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/doeshing/urlguard/internal/app"
	"github.com/doeshing/urlguard/internal/application/analyze"
	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/infrastructure/cli/commands"
	"github.com/doeshing/urlguard/internal/infrastructure/cli/helpers"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The container is built on first
// use so that --config, --rules and --debug are honoured.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	containerOpts := app.Options{Verbose: opts.Verbose}

	var (
		once      sync.Once
		container *app.Container
		buildErr  error
	)
	load := helpers.ContainerFunc(func(ctx context.Context) (*app.Container, error) {
		once.Do(func() {
			container, buildErr = app.BuildContainer(ctx, containerOpts)
		})
		return container, buildErr
	})

	analyzeCmd := newAnalyzeCommand(load)

	root := &cobra.Command{
		Use:   "urlguard [url...]",
		Short: "urlguard - heuristic URL risk classifier",
		Long: "urlguard scores URLs against a fixed table of regular-expression rules and reports\n" +
			"a risk tier (low, medium, high) with the findings that produced it.\n" +
			"It is a pattern-matching aid, not a malware scanner.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return analyzeCmd.RunE(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&containerOpts.ConfigPath, "config", "", "Config file (default ~/.urlguard/config.yaml, or $URLGUARD_CONFIG)")
	flags.StringVar(&containerOpts.RulesFile, "rules", "", "Rules file overriding rules.file from the config")
	flags.BoolVar(&containerOpts.Verbose, "debug", opts.Verbose, "Enable debug logging on stderr")

	analyzeCmd.Flags().VisitAll(func(f *pflag.Flag) {
		root.Flags().AddFlag(f)
	})

	root.AddCommand(analyzeCmd)
	root.AddCommand(commands.NewBatchCommand(load))
	root.AddCommand(commands.NewRulesCommand(load))
	root.AddCommand(commands.NewDemoCommand(load))
	root.AddCommand(commands.NewConfigCommand(load))
	root.AddCommand(commands.NewDoctorCommand(load))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}

func newAnalyzeCommand(load helpers.ContainerFunc) *cobra.Command {
	var (
		output string
		failOn string
	)

	cmd := &cobra.Command{
		Use:   "analyze [url...]",
		Short: "Classify one or more URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := load(cmd.Context())
			if err != nil {
				return err
			}
			if container.AnalyzeService == nil {
				return errors.New(commands.ErrAnalyzeServiceUnavailable)
			}
			format, err := helpers.ResolveFormat(output, container)
			if err != nil {
				return err
			}

			verdicts, err := analyzeArgs(cmd.Context(), container.AnalyzeService, args)
			if err != nil {
				return err
			}
			if err := helpers.RenderVerdicts(cmd.OutOrStdout(), format, verdicts, container.Config.Output.Recommendations); err != nil {
				return err
			}
			return helpers.CheckFailOn(failOn, commands.ExitCodeRiskThreshold, verdicts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: text|json (default from config)")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Exit with status 2 when any input reaches this tier (low|medium|high)")
	return cmd
}

func analyzeArgs(ctx context.Context, svc *analyze.Service, args []string) ([]domain.Verdict, error) {
	if len(args) == 1 {
		verdict, err := svc.Analyze(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return []domain.Verdict{verdict}, nil
	}
	return svc.AnalyzeBatch(ctx, args)
}
