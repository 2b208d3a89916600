// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package factorycmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/luxfi/geth/common"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tipl-labs/launchpad/pkg/application"
	"github.com/tipl-labs/launchpad/pkg/chain"
	"github.com/tipl-labs/launchpad/pkg/constants"
	"github.com/tipl-labs/launchpad/pkg/ux"
)

var app *application.TIPL

// Global flags
var (
	networkFlag    string
	rpcFlag        string
	privateKeyFlag string
	factoryFlag    string
)

// tipl factory
func NewCmd(injectedApp *application.TIPL) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Stamp out standalone fixed-supply tokens",
		Long: `Commands for the token factory: one fixed 1,000,000-token asset per call,
minted directly to a recipient and appended to the factory's public list.
No treasury split, no wallet, no pool.

Example usage:
  tipl factory create --name "Test Token" --symbol TEST --recipient 0x...
  tipl factory list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&networkFlag, "network", "base", "network: base or base-sepolia")
	cmd.PersistentFlags().StringVar(&rpcFlag, "rpc", "", "custom RPC endpoint (overrides network default)")
	cmd.PersistentFlags().StringVar(&privateKeyFlag, "private-key", "", "private key (hex) for wallet access")
	cmd.PersistentFlags().StringVar(&factoryFlag, "factory-address", "", "deployed factory contract address")

	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

func newCreateCmd() *cobra.Command {
	var (
		name      string
		symbol    string
		recipient string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new fixed-supply token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || symbol == "" {
				return fmt.Errorf("--name and --symbol are required")
			}
			if !common.IsHexAddress(recipient) {
				return fmt.Errorf("invalid --recipient %q", recipient)
			}
			to := common.HexToAddress(recipient)
			if to == (common.Address{}) {
				// Fail here rather than paying for a guaranteed revert.
				return fmt.Errorf("recipient cannot be zero address")
			}

			factory, client, err := getFactory()
			if err != nil {
				return err
			}
			defer client.Close()
			if err := client.LoadWallet(privateKeyFlag); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.TxTimeout)
			defer cancel()

			ux.Logger.PrintToUser("Creating token: %s (%s)", name, symbol)
			ux.Logger.PrintToUser("Recipient: %s", to.Hex())

			token, err := factory.CreateToken(ctx, name, symbol, to)
			if err != nil {
				return err
			}
			ux.Logger.GreenCheckmarkToUser("Token deployed to: %s", token.Hex())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "token display name")
	cmd.Flags().StringVar(&symbol, "symbol", "", "token symbol")
	cmd.Flags().StringVar(&recipient, "recipient", "", "account receiving the full supply")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tokens the factory has deployed",
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, client, err := getFactory()
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.APIRequestTimeout)
			defer cancel()

			tokens, err := factory.Tokens(ctx)
			if err != nil {
				return err
			}
			if len(tokens) == 0 {
				ux.Logger.PrintToUser("No tokens deployed yet")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("#", "Token", "Name", "Symbol", "Supply")
			for i, token := range tokens {
				info, err := chain.GetTokenInfo(client, token)
				if err != nil {
					_ = table.Append([]string{strconv.Itoa(i), token.Hex(), "?", "?", "?"})
					continue
				}
				_ = table.Append([]string{
					strconv.Itoa(i),
					token.Hex(),
					info.Name,
					info.Symbol,
					chain.FormatTokenAmount(info.TotalSupply),
				})
			}
			_ = table.Render()
			return nil
		},
	}
}

// getFactory resolves network, RPC, and contract address flags into a bound
// factory client.
func getFactory() (*chain.Factory, *chain.Client, error) {
	network := chain.GetNetwork(networkFlag)
	if network == nil {
		return nil, nil, fmt.Errorf("unknown network: %s", networkFlag)
	}
	cfg := *network
	if rpcFlag != "" {
		cfg.RPC = rpcFlag
	} else if rpc := app.Conf.GetConfigStringValue(constants.ConfigRPCKey); rpc != "" {
		cfg.RPC = rpc
	}

	addr := factoryFlag
	if addr == "" {
		addr = app.Conf.GetConfigStringValue(constants.ConfigFactoryAddressKey)
	}
	if addr == "" {
		return nil, nil, fmt.Errorf("no factory address: set --factory-address or `tipl config set %s`", constants.ConfigFactoryAddressKey)
	}
	if !common.IsHexAddress(addr) {
		return nil, nil, fmt.Errorf("%q is not a hex address", addr)
	}

	client, err := chain.NewClient(&cfg)
	if err != nil {
		return nil, nil, err
	}
	factory, err := chain.NewFactory(client, common.HexToAddress(addr))
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return factory, client, nil
}
