package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	configapp "github.com/doeshing/urlguard/internal/application/config"
	"github.com/doeshing/urlguard/internal/domain"
	"github.com/doeshing/urlguard/internal/infrastructure/cli/helpers"
	configinfra "github.com/doeshing/urlguard/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(load helpers.ContainerFunc) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect urlguard configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd.Context(), cmd.OutOrStdout(), load)
		},
	}

	configCmd.AddCommand(
		newConfigShowCommand(load),
		newConfigGetCommand(load),
		newConfigSetCommand(load),
		newConfigValidateCommand(load),
		newConfigDiffCommand(load),
		newConfigInitCommand(load),
		newConfigPathCommand(load),
	)

	return configCmd
}

// newConfigShowCommand creates the 'config show' subcommand
func newConfigShowCommand(load helpers.ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show full configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd.Context(), cmd.OutOrStdout(), load)
		},
	}
}

// newConfigGetCommand creates the 'config get' subcommand
func newConfigGetCommand(load helpers.ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value (" + strings.Join(domain.ConfigKeys(), ", ") + ")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context(), load)
			if err != nil {
				return err
			}
			value, err := cfg.GetValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

// newConfigSetCommand creates the 'config set' subcommand
func newConfigSetCommand(load helpers.ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := strings.Join(args[1:], " ")
			return setConfigurationValue(cmd.Context(), cmd.OutOrStdout(), load, key, value)
		},
	}
}

// newConfigValidateCommand creates the 'config validate' subcommand
func newConfigValidateCommand(load helpers.ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context(), load)
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			if err := configapp.Validate(cfg); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgConfigurationValid)
			return nil
		},
	}
}

// newConfigDiffCommand creates the 'config diff' subcommand
func newConfigDiffCommand(load helpers.ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Show differences from the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigurationDiff(cmd.Context(), cmd.OutOrStdout(), load)
		},
	}
}

// newConfigInitCommand creates the 'config init' subcommand
func newConfigInitCommand(load helpers.ContainerFunc) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := load(cmd.Context())
			if err != nil {
				return err
			}
			loader, err := helpers.GetConfigLoader(container)
			if err != nil {
				return err
			}
			if loader.Exists() && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", loader.Path())
			}
			if err := helpers.SaveConfigWithValidation(container, configinfra.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", loader.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file (a backup is kept)")
	return cmd
}

// newConfigPathCommand creates the 'config path' subcommand
func newConfigPathCommand(load helpers.ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := load(cmd.Context())
			if err != nil {
				return err
			}
			loader, err := helpers.GetConfigLoader(container)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loader.Path())
			return nil
		},
	}
}

// loadConfig reads the on-disk configuration, ignoring command line overrides
func loadConfig(ctx context.Context, load helpers.ContainerFunc) (domain.Config, error) {
	container, err := load(ctx)
	if err != nil {
		return domain.Config{}, err
	}
	if container.ConfigProvider == nil {
		return domain.Config{}, errors.New(ErrConfigLoaderUnavailable)
	}
	return container.ConfigProvider.Load(ctx)
}

// showConfiguration prints the configuration as YAML
func showConfiguration(ctx context.Context, out io.Writer, load helpers.ContainerFunc) error {
	cfg, err := loadConfig(ctx, load)
	if err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(raw)
	return err
}

// setConfigurationValue updates a single key and saves with backup
func setConfigurationValue(ctx context.Context, out io.Writer, load helpers.ContainerFunc, key, value string) error {
	container, err := load(ctx)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(ctx, load)
	if err != nil {
		return err
	}
	if err := cfg.SetValue(key, value); err != nil {
		return err
	}
	if err := helpers.SaveConfigWithValidation(container, cfg); err != nil {
		return err
	}
	updated, _ := cfg.GetValue(key)
	fmt.Fprintf(out, "%s = %s\n", key, updated)
	return nil
}

// showConfigurationDiff compares the current config with the defaults
func showConfigurationDiff(ctx context.Context, out io.Writer, load helpers.ContainerFunc) error {
	currentConfig, err := loadConfig(ctx, load)
	if err != nil {
		return err
	}

	defaultConfig := configinfra.DefaultConfig()
	diff := cmp.Diff(defaultConfig, currentConfig)

	if diff == "" {
		fmt.Fprintln(out, MsgNoDifferencesFromDefault)
		return nil
	}

	fmt.Fprintln(out, diff)
	return nil
}
