package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/ecofootprint/internal/config"
	"github.com/rshade/ecofootprint/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root command for the ecofootprint CLI.
// Run without a subcommand it performs the footprint calculation.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment
// lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
		calcOpts   calculateOptions
	)

	cmd := &cobra.Command{
		Use:     "ecofootprint",
		Short:   "Estimate your annual carbon footprint",
		Long:    "EcoFootprint: estimate yearly kg CO2e from travel, electricity, and diet, and get a reduction tip",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Context() == nil {
				cmd.SetContext(context.Background())
			}

			path := configPath
			if path == "" {
				if envPath, ok := lookupEnv(config.EnvConfigPath); ok {
					path = envPath
				}
			}

			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			cfg.ApplyEnv(lookupEnv)
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, &calcOpts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to config file (default $ECOFOOTPRINT_CONFIG or ~/.ecofootprint/config.yaml)")
	addCalculateFlags(cmd, &calcOpts)

	cmd.AddCommand(NewCalculateCmd(), newConfigCmd(), NewFactorsCmd())

	return cmd
}

const rootCmdExample = `  # Answer the prompts interactively
  ecofootprint

  # Use the full-screen input form
  ecofootprint --tui

  # Supply everything on the command line
  ecofootprint calculate --car-km 5000 --bus-km 0 --electricity-kwh 0 --diet 4

  # Machine-readable output with equivalencies
  ecofootprint calculate --car-km 100 --bus-km 50 --electricity-kwh 200 --diet 1 --output json --equivalents

  # Show the emission factors in use
  ecofootprint factors

  # Write a default configuration file
  ecofootprint config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}
