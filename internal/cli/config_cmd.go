package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/ecofootprint/internal/config"
	"github.com/rshade/ecofootprint/internal/logging"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.ecofootprint/config.yaml
  ecofootprint config init

  # Overwrite an existing file
  ecofootprint config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded := config.GetGlobalConfig()
			cfg := config.New()
			cfg.SetConfigPath(loaded.ConfigPath())

			if !force {
				if _, err := os.Stat(cfg.ConfigPath()); err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
				}
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			logger.Debug().Ctx(cmd.Context()).Str("path", cfg.ConfigPath()).Msg("configuration written")
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration initialized successfully")
			fmt.Fprintf(out, "Configuration file: %s\n", cfg.ConfigPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			data, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintf(out, "# %s\n", cfg.ConfigPath()); err != nil {
				return err
			}
			if _, err = out.Write(data); err != nil {
				return err
			}
			if cfg.Logging.File != "" {
				logging.PrintLogPathMessage(out, cfg.Logging.File)
			}
			return nil
		},
	}
}
