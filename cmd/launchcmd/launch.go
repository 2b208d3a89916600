// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package launchcmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tipl-labs/launchpad/pkg/application"
	"github.com/tipl-labs/launchpad/pkg/chain"
	"github.com/tipl-labs/launchpad/pkg/constants"
	"github.com/tipl-labs/launchpad/pkg/launch"
	"github.com/tipl-labs/launchpad/pkg/sandbox"
	"github.com/tipl-labs/launchpad/pkg/ux"
)

var app *application.TIPL

// defaultSandboxInvoker stands in for the transaction sender when a sandbox
// launch is run without wallet credentials.
var defaultSandboxInvoker = common.HexToAddress("0x843CD0fb7b8f317fad967356c6377F8C3725d190")

type LaunchFlags struct {
	symbol       string
	name         string
	firstSigner  string
	secondSigner string
	createPool   bool
	sandboxMode  bool
	network      string
	rpcEndpoint  string
	privateKey   string
	setupAddress string
}

var launchFlags LaunchFlags

// tipl launch
func NewCmd(injectedApp *application.TIPL) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Run a complete asset launch",
		Long: `Run a complete asset launch: mint a fixed 1,000,000-token supply, deploy a
multisig wallet, send 5% to the treasury, optionally seed a liquidity pool
against USDC, and deliver the remainder to the wallet. The whole sequence is
one atomic operation: it happens completely or not at all.

Examples:
  tipl launch --symbol ACME --name "Acme Corp TIPL" --sandbox
  tipl launch --symbol ACME --name "Acme Corp TIPL" --pool --sandbox
  tipl launch --symbol ACME --name "Acme Corp TIPL" --second-signer 0x... \
    --network base --private-key 0x...`,
		RunE: doLaunch,
		Args: cobra.ExactArgs(0),
	}
	cmd.Flags().StringVar(&launchFlags.symbol, "symbol", "", "token symbol (required)")
	cmd.Flags().StringVar(&launchFlags.name, "name", "", "token display name (required)")
	cmd.Flags().StringVar(&launchFlags.firstSigner, "first-signer", "", "first wallet owner (defaults to the invoking account)")
	cmd.Flags().StringVar(&launchFlags.secondSigner, "second-signer", "", "second wallet owner (makes the wallet 2-of-2)")
	cmd.Flags().BoolVar(&launchFlags.createPool, "pool", false, "seed a liquidity pool against USDC")
	cmd.Flags().BoolVar(&launchFlags.sandboxMode, "sandbox", false, "run against the in-memory sandbox instead of a network")
	cmd.Flags().StringVar(&launchFlags.network, "network", "base", "network: base or base-sepolia")
	cmd.Flags().StringVar(&launchFlags.rpcEndpoint, "rpc", "", "custom RPC endpoint (overrides network default)")
	cmd.Flags().StringVar(&launchFlags.privateKey, "private-key", "", "private key (hex) for wallet access")
	cmd.Flags().StringVar(&launchFlags.setupAddress, "setup-address", "", "deployed setup contract address")
	return cmd
}

func buildRequest(flags LaunchFlags) (launch.Request, error) {
	first, err := parseSigner(flags.firstSigner)
	if err != nil {
		return launch.Request{}, fmt.Errorf("invalid --first-signer: %w", err)
	}
	second, err := parseSigner(flags.secondSigner)
	if err != nil {
		return launch.Request{}, fmt.Errorf("invalid --second-signer: %w", err)
	}
	req := launch.Request{
		Symbol:       flags.symbol,
		Name:         flags.name,
		FirstSigner:  first,
		SecondSigner: second,
		CreatePool:   flags.createPool,
	}
	return req, req.Validate()
}

// parseSigner maps an empty flag to the zero address sentinel.
func parseSigner(s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%q is not a hex address", s)
	}
	return common.HexToAddress(s), nil
}

func doLaunch(cmd *cobra.Command, _ []string) error {
	req, err := buildRequest(launchFlags)
	if err != nil {
		return err
	}
	if launchFlags.sandboxMode {
		return launchInSandbox(cmd.Context(), req)
	}
	return launchOnChain(cmd.Context(), req)
}

func launchInSandbox(ctx context.Context, req launch.Request) error {
	sub := sandbox.New()
	invoker := sandboxInvoker()

	launcher, err := launch.New(launch.Config{
		Ledger:       sub.Ledger(),
		Wallets:      sub.Wallets(),
		Pools:        sub.Pools(),
		Substrate:    sub,
		Holding:      common.BytesToAddress([]byte("tipl/holding")),
		Treasury:     chain.BaseMainnet.Treasury,
		CounterAsset: chain.BaseMainnet.USDC,
		Log:          app.Log,
	})
	if err != nil {
		return err
	}

	res, err := launcher.Launch(ctx, req, invoker)
	if err != nil {
		return err
	}

	ux.Logger.GreenCheckmarkToUser("Sandbox launch complete")
	printResult(res)

	walletBal, err := sub.Ledger().BalanceOf(ctx, res.Token, res.Wallet)
	if err != nil {
		return err
	}
	treasuryBal, err := sub.Ledger().BalanceOf(ctx, res.Token, chain.BaseMainnet.Treasury)
	if err != nil {
		return err
	}
	owners, err := sub.Wallets().Owners(ctx, res.Wallet)
	if err != nil {
		return err
	}
	threshold, err := sub.Wallets().Threshold(ctx, res.Wallet)
	if err != nil {
		return err
	}

	ux.Logger.PrintToUser("Wallet balance:   %s %s", chain.FormatTokenAmount(walletBal), res.Symbol)
	ux.Logger.PrintToUser("Treasury balance: %s %s", chain.FormatTokenAmount(treasuryBal), res.Symbol)
	ux.Logger.PrintToUser("Wallet policy:    %d of %d owners", threshold, len(owners))
	if res.HasPool() {
		ux.Logger.PrintToUser("Position receipts held by wallet: %d", sub.Pools().Positions(ctx, res.Wallet))
	}
	return nil
}

func launchOnChain(ctx context.Context, req launch.Request) error {
	network := chain.GetNetwork(launchFlags.network)
	if network == nil {
		return fmt.Errorf("unknown network: %s", launchFlags.network)
	}
	cfg := *network
	if rpc := resolveRPC(); rpc != "" {
		cfg.RPC = rpc
	}
	setupAddr, err := resolveContract(launchFlags.setupAddress, constants.ConfigSetupAddressKey)
	if err != nil {
		return err
	}

	client, err := chain.NewClient(&cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.LoadWallet(launchFlags.privateKey); err != nil {
		return err
	}

	setup, err := chain.NewSetup(client, setupAddr)
	if err != nil {
		return err
	}

	ux.Logger.PrintToUser("Launching %s (%s) on %s...", req.Name, req.Symbol, cfg.Name)
	txCtx, cancel := context.WithTimeout(ctx, constants.TxTimeout)
	defer cancel()

	res, err := setup.Launch(txCtx, req)
	if err != nil {
		return err
	}

	ux.Logger.GreenCheckmarkToUser("Launch complete")
	printResult(res)

	walletBal, err := chain.GetTokenBalance(client, res.Token, res.Wallet)
	if err != nil {
		return err
	}
	treasuryBal, err := chain.GetTokenBalance(client, res.Token, cfg.Treasury)
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("Wallet balance:   %s %s", chain.FormatTokenAmount(walletBal), res.Symbol)
	ux.Logger.PrintToUser("Treasury balance: %s %s", chain.FormatTokenAmount(treasuryBal), res.Symbol)

	if res.HasPool() {
		positions, err := chain.PositionBalance(txCtx, client, res.Wallet)
		if err != nil {
			return err
		}
		ux.Logger.PrintToUser("Position receipts held by wallet: %s", positions)
	}
	return nil
}

// sandboxInvoker derives the invoking account from the private key when one
// is supplied, mirroring on-chain sender semantics.
func sandboxInvoker() common.Address {
	pk := launchFlags.privateKey
	if pk == "" {
		pk = os.Getenv(constants.EnvPrivateKey)
	}
	if pk != "" {
		if key, err := crypto.HexToECDSA(strings.TrimPrefix(pk, "0x")); err == nil {
			return common.Address(crypto.PubkeyToAddress(key.PublicKey))
		}
	}
	return defaultSandboxInvoker
}

func resolveRPC() string {
	if launchFlags.rpcEndpoint != "" {
		return launchFlags.rpcEndpoint
	}
	return app.Conf.GetConfigStringValue(constants.ConfigRPCKey)
}

func resolveContract(flagValue, configKey string) (common.Address, error) {
	s := flagValue
	if s == "" {
		s = app.Conf.GetConfigStringValue(configKey)
	}
	if s == "" {
		return common.Address{}, fmt.Errorf("no contract address: set --%s or `tipl config set %s`", configKey, configKey)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%q is not a hex address", s)
	}
	return common.HexToAddress(s), nil
}

func printResult(res *launch.Result) {
	pool := "none"
	if res.HasPool() {
		pool = res.PoolID.Hex()
	}
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")
	_ = table.Append([]string{"Name", res.Name})
	_ = table.Append([]string{"Symbol", res.Symbol})
	_ = table.Append([]string{"Token", res.Token.Hex()})
	_ = table.Append([]string{"Wallet", res.Wallet.Hex()})
	_ = table.Append([]string{"Pool", pool})
	_ = table.Render()
}
