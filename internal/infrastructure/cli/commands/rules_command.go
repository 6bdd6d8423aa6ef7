package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/infrastructure/cli/helpers"
	"github.com/doeshing/urlguard/internal/infrastructure/security"
)

// NewRulesCommand creates the rules command with list/export subcommands
func NewRulesCommand(load helpers.ContainerFunc) *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the active rule table",
	}

	rulesCmd.AddCommand(
		newRulesListCommand(load),
		newRulesExportCommand(load),
	)

	return rulesCmd
}

// newRulesListCommand prints the active rules grouped by tier
func newRulesListCommand(load helpers.ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rules grouped by tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := load(cmd.Context())
			if err != nil {
				return err
			}
			source := "built-in"
			if container.CustomRules {
				source = container.Config.Rules.File
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Rule table: %s\n\n", source)
			helpers.RenderRules(out, container.Classifier.Rules())
			return nil
		},
	}
}

// newRulesExportCommand writes the active table as a rules file
func newRulesExportCommand(load helpers.ContainerFunc) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the active rule table as YAML (starting point for rules.file)",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := load(cmd.Context())
			if err != nil {
				return err
			}
			raw, err := security.MarshalRuleSet(container.Classifier.Rules())
			if err != nil {
				return err
			}
			if dest == "" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}
			if err := os.WriteFile(dest, raw, domain.SecureFilePermissions); err != nil {
				return fmt.Errorf("write rules file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rules to %s\n", container.Classifier.Rules().Len(), dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "file", "", "Write to this path instead of stdout")
	return cmd
}
