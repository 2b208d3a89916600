// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package poolcmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tipl-labs/launchpad/pkg/application"
	"github.com/tipl-labs/launchpad/pkg/chain"
	"github.com/tipl-labs/launchpad/pkg/ux"
)

var app *application.TIPL

// tipl pool
func NewCmd(injectedApp *application.TIPL) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Pool math utilities",
		Long: `Utilities for concentrated-liquidity pool math.

Example usage:
  tipl pool price --tick 0
  tipl pool price --tick -138163`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newPriceCmd())
	return cmd
}

func newPriceCmd() *cobra.Command {
	var tick int

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Compute the Q64.96 sqrt price for a tick",
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := chain.SqrtPriceX96(tick)
			if err != nil {
				return err
			}
			ux.Logger.PrintToUser("Tick:         %s", strconv.Itoa(tick))
			ux.Logger.PrintToUser("SqrtPriceX96: %s", price.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&tick, "tick", 0, "pool tick (price = 1.0001^tick)")
	return cmd
}
