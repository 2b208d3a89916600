// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tipl-labs/launchpad/pkg/application"
	"github.com/tipl-labs/launchpad/pkg/constants"
	"github.com/tipl-labs/launchpad/pkg/ux"
)

var app *application.TIPL

// knownKeys are the settings the CLI actually reads.
var knownKeys = []string{
	constants.ConfigNetworkKey,
	constants.ConfigRPCKey,
	constants.ConfigSetupAddressKey,
	constants.ConfigFactoryAddressKey,
}

// tipl config
func NewCmd(injectedApp *application.TIPL) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "config",
		Short: "CLI configuration",
		Long: `Read and write persistent CLI settings stored in $HOME/.tipl/cli.json.

Example usage:
  tipl config set rpc https://mainnet.base.org
  tipl config get rpc
  tipl config list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newListCmd())
	return cmd
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print the value of a configuration key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !app.Conf.ConfigValueIsSet(key) {
				return fmt.Errorf("key %q is not set", key)
			}
			ux.Logger.PrintToUser("%s", app.Conf.GetConfigStringValue(key))
			return nil
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set a configuration key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := app.Conf.SetConfigValue(key, value); err != nil {
				return fmt.Errorf("failed writing config: %w", err)
			}
			ux.Logger.GreenCheckmarkToUser("%s set to %s", key, value)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all settings the CLI reads",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ConfigFileExists() {
				ux.Logger.PrintToUser("Config file: %s", app.Conf.GetConfigPath())
			} else {
				ux.Logger.PrintToUser("No config file found (run `tipl config set` to create one)")
			}
			for _, key := range knownKeys {
				value := app.Conf.GetConfigStringValue(key)
				if value == "" {
					value = "<unset>"
				}
				ux.Logger.PrintToUser("  %-16s %s", key, value)
			}
			return nil
		},
	}
}
