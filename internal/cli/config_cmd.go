package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commutrace/commutrace/internal/config"
	"github.com/commutrace/commutrace/internal/units"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persisted preferences",
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigGetCmd(), newConfigSetCmd())
	return cmd
}

// newConfigInitCmd writes a default config file if none exists.
func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.ConfigPath()
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if err := cfg.Save(); err != nil {
				return err
			}

			cmd.Printf("Configuration written to %s\n", path)
			return nil
		},
	}
}

// newConfigGetCmd prints a configuration value.
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			switch args[0] {
			case "units":
				cmd.Println(cfg.UnitSystem().String())
			case "logging.level":
				cmd.Println(cfg.Logging.Level)
			default:
				return fmt.Errorf("unknown config key %q", args[0])
			}
			return nil
		},
	}
}

// newConfigSetCmd updates and persists a configuration value.
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set and persist a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			switch args[0] {
			case "units":
				sys, parseErr := units.ParseSystem(args[1])
				if parseErr != nil {
					return fmt.Errorf("units %q: %w", args[1], parseErr)
				}
				cfg.SetUnitSystem(sys)
			case "logging.level":
				cfg.Logging.Level = args[1]
			default:
				return fmt.Errorf("unknown config key %q", args[0])
			}

			if err := cfg.Save(); err != nil {
				return err
			}

			cmd.Printf("%s = %s\n", args[0], args[1])
			return nil
		},
	}
}
