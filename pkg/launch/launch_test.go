// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launch_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/tipl-labs/launchpad/pkg/launch"
	"github.com/tipl-labs/launchpad/pkg/sandbox"
)

var (
	holding  = common.HexToAddress("0xAA00000000000000000000000000000000000001")
	treasury = common.HexToAddress("0xAA00000000000000000000000000000000000002")
	usdc     = common.HexToAddress("0xAA00000000000000000000000000000000000003")
	invoker  = common.HexToAddress("0xAA00000000000000000000000000000000000004")
	partner  = common.HexToAddress("0xAA00000000000000000000000000000000000005")
)

func tokens(n int64) *big.Int {
	one := new(big.Int).Exp(big.NewInt(10), big.NewInt(launch.TokenDecimals), nil)
	return new(big.Int).Mul(big.NewInt(n), one)
}

func newLauncher(t *testing.T, sub *sandbox.Substrate) *launch.Launcher {
	t.Helper()
	launcher, err := launch.New(launch.Config{
		Ledger:       sub.Ledger(),
		Wallets:      sub.Wallets(),
		Pools:        sub.Pools(),
		Substrate:    sub,
		Holding:      holding,
		Treasury:     treasury,
		CounterAsset: usdc,
	})
	require.NoError(t, err)
	return launcher
}

func TestNewRejectsIncompleteConfig(t *testing.T) {
	require := require.New(t)
	sub := sandbox.New()

	full := launch.Config{
		Ledger:       sub.Ledger(),
		Wallets:      sub.Wallets(),
		Pools:        sub.Pools(),
		Substrate:    sub,
		Holding:      holding,
		Treasury:     treasury,
		CounterAsset: usdc,
	}

	broken := full
	broken.Ledger = nil
	_, err := launch.New(broken)
	require.Error(err)

	broken = full
	broken.Wallets = nil
	_, err = launch.New(broken)
	require.Error(err)

	broken = full
	broken.Treasury = common.Address{}
	_, err = launch.New(broken)
	require.Error(err)

	broken = full
	broken.Holding = common.Address{}
	_, err = launch.New(broken)
	require.Error(err)
}

func TestLaunchWithoutPool(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	sub := sandbox.New()
	launcher := newLauncher(t, sub)

	res, err := launcher.Launch(ctx, launch.Request{Symbol: "ACME", Name: "Acme Corp"}, invoker)
	require.NoError(err)
	require.Equal("ACME", res.Symbol)
	require.Equal("Acme Corp", res.Name)
	require.NotEqual(common.Address{}, res.Token)
	require.NotEqual(common.Address{}, res.Wallet)
	require.False(res.HasPool())
	require.Equal(common.Hash{}, res.PoolID)

	treasuryBal, err := sub.Ledger().BalanceOf(ctx, res.Token, treasury)
	require.NoError(err)
	require.Zero(treasuryBal.Cmp(tokens(50_000)))

	walletBal, err := sub.Ledger().BalanceOf(ctx, res.Token, res.Wallet)
	require.NoError(err)
	require.Zero(walletBal.Cmp(tokens(950_000)))

	holdingBal, err := sub.Ledger().BalanceOf(ctx, res.Token, holding)
	require.NoError(err)
	require.Zero(holdingBal.Sign())
}

func TestLaunchWithPool(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	sub := sandbox.New()
	launcher := newLauncher(t, sub)

	res, err := launcher.Launch(ctx, launch.Request{Symbol: "ACME", Name: "Acme Corp", CreatePool: true}, invoker)
	require.NoError(err)
	require.True(res.HasPool())

	// 10 bps haircut on the 200,000 seed: 199,800 consumed, the 200-token
	// remainder rides along to the wallet.
	treasuryBal, err := sub.Ledger().BalanceOf(ctx, res.Token, treasury)
	require.NoError(err)
	require.Zero(treasuryBal.Cmp(tokens(50_000)))

	walletBal, err := sub.Ledger().BalanceOf(ctx, res.Token, res.Wallet)
	require.NoError(err)
	require.Zero(walletBal.Cmp(tokens(750_200)))

	liquidity, err := sub.Pools().Liquidity(ctx, res.PoolID)
	require.NoError(err)
	require.Zero(liquidity.Cmp(tokens(199_800)))

	holdingBal, err := sub.Ledger().BalanceOf(ctx, res.Token, holding)
	require.NoError(err)
	require.Zero(holdingBal.Sign())

	// The position receipt belongs to the new wallet, never the orchestrator.
	owner, err := sub.Pools().PositionOwner(ctx, res.PoolID)
	require.NoError(err)
	require.Equal(res.Wallet, owner)
	require.Equal(1, sub.Pools().Positions(ctx, res.Wallet))
	require.Zero(sub.Pools().Positions(ctx, holding))
}

func TestLaunchSupplyConservation(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	sub := sandbox.New()
	launcher := newLauncher(t, sub)

	res, err := launcher.Launch(ctx, launch.Request{Symbol: "ACME", Name: "Acme Corp", CreatePool: true}, invoker)
	require.NoError(err)

	treasuryBal, err := sub.Ledger().BalanceOf(ctx, res.Token, treasury)
	require.NoError(err)
	walletBal, err := sub.Ledger().BalanceOf(ctx, res.Token, res.Wallet)
	require.NoError(err)
	liquidity, err := sub.Pools().Liquidity(ctx, res.PoolID)
	require.NoError(err)

	sum := new(big.Int).Add(treasuryBal, walletBal)
	sum.Add(sum, liquidity)
	require.Zero(sum.Cmp(launch.TotalSupply()))
}

func TestLaunchOwnerResolution(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	sub := sandbox.New()
	launcher := newLauncher(t, sub)

	// No signers: the invoker becomes the sole owner.
	res, err := launcher.Launch(ctx, launch.Request{Symbol: "SOLO", Name: "Solo"}, invoker)
	require.NoError(err)
	owners, err := sub.Wallets().Owners(ctx, res.Wallet)
	require.NoError(err)
	require.Equal([]common.Address{invoker}, owners)
	threshold, err := sub.Wallets().Threshold(ctx, res.Wallet)
	require.NoError(err)
	require.Equal(1, threshold)

	// Second signer set: 2-of-2 with the invoker.
	res, err = launcher.Launch(ctx, launch.Request{Symbol: "DUO", Name: "Duo", SecondSigner: partner}, invoker)
	require.NoError(err)
	owners, err = sub.Wallets().Owners(ctx, res.Wallet)
	require.NoError(err)
	require.Equal([]common.Address{invoker, partner}, owners)
	threshold, err = sub.Wallets().Threshold(ctx, res.Wallet)
	require.NoError(err)
	require.Equal(2, threshold)
}

func TestLaunchRejectsBadRequests(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	launcher := newLauncher(t, sandbox.New())

	_, err := launcher.Launch(ctx, launch.Request{Name: "No Symbol"}, invoker)
	require.ErrorIs(err, launch.ErrEmptySymbol)

	_, err = launcher.Launch(ctx, launch.Request{Symbol: "NONAME"}, invoker)
	require.ErrorIs(err, launch.ErrEmptyName)

	_, err = launcher.Launch(ctx, launch.Request{Symbol: "ACME", Name: "Acme"}, common.Address{})
	require.ErrorIs(err, launch.ErrZeroInvoker)
}

func TestLaunchesAreDistinct(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	sub := sandbox.New()
	launcher := newLauncher(t, sub)

	req := launch.Request{Symbol: "ACME", Name: "Acme Corp"}
	first, err := launcher.Launch(ctx, req, invoker)
	require.NoError(err)
	second, err := launcher.Launch(ctx, req, invoker)
	require.NoError(err)

	// Identical parameters still produce brand-new instances.
	require.NotEqual(first.Token, second.Token)
	require.NotEqual(first.Wallet, second.Wallet)

	// Both carry their full independent allocations.
	for _, res := range []*launch.Result{first, second} {
		bal, err := sub.Ledger().BalanceOf(ctx, res.Token, res.Wallet)
		require.NoError(err)
		require.Zero(bal.Cmp(tokens(950_000)))
	}
}

func TestConcurrentLaunches(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	sub := sandbox.New()
	launcher := newLauncher(t, sub)

	const n = 8
	results := make([]*launch.Result, n)
	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			res, err := launcher.Launch(egCtx, launch.Request{
				Symbol:     fmt.Sprintf("TOK%d", i),
				Name:       fmt.Sprintf("Token %d", i),
				CreatePool: i%2 == 0,
			}, invoker)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	require.NoError(eg.Wait())

	seen := make(map[common.Address]bool, n)
	for _, res := range results {
		require.False(seen[res.Token])
		seen[res.Token] = true

		bal, err := sub.Ledger().BalanceOf(ctx, res.Token, treasury)
		require.NoError(err)
		require.Zero(bal.Cmp(tokens(50_000)))

		left, err := sub.Ledger().BalanceOf(ctx, res.Token, holding)
		require.NoError(err)
		require.Zero(left.Sign())
	}
}

// brokenPools fails every initialization, standing in for a reverting
// registry.
type brokenPools struct{}

func (brokenPools) InitializePool(context.Context, common.Address, common.Address, *big.Int, common.Address, common.Address) (common.Hash, *big.Int, error) {
	return common.Hash{}, nil, errors.New("registry unavailable")
}

func TestLaunchRollsBackOnPoolFailure(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	sub := sandbox.New()

	// A successful launch first, so there is prior state a botched revert
	// would clobber.
	good := newLauncher(t, sub)
	prior, err := good.Launch(ctx, launch.Request{Symbol: "GOOD", Name: "Good"}, invoker)
	require.NoError(err)

	bad, err := launch.New(launch.Config{
		Ledger:       sub.Ledger(),
		Wallets:      sub.Wallets(),
		Pools:        brokenPools{},
		Substrate:    sub,
		Holding:      holding,
		Treasury:     treasury,
		CounterAsset: usdc,
	})
	require.NoError(err)

	_, err = bad.Launch(ctx, launch.Request{Symbol: "DOOM", Name: "Doomed", CreatePool: true}, invoker)
	require.Error(err)

	// The mint and treasury transfer that preceded the failure are gone.
	bal, err := sub.Ledger().BalanceOf(ctx, prior.Token, treasury)
	require.NoError(err)
	require.Zero(bal.Cmp(tokens(50_000)))
	owners, err := sub.Wallets().Owners(ctx, prior.Wallet)
	require.NoError(err)
	require.Len(owners, 1)

	// The substrate is healthy for the next launch.
	res, err := good.Launch(ctx, launch.Request{Symbol: "NEXT", Name: "Next", CreatePool: true}, invoker)
	require.NoError(err)
	require.True(res.HasPool())
}

func TestLaunchRollsBackOnWalletFailure(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	sub := sandbox.New()
	launcher := newLauncher(t, sub)

	// Duplicate owners pass resolution untouched and die in the provisioner.
	_, err := launcher.Launch(ctx, launch.Request{
		Symbol:       "DUP",
		Name:         "Duplicate",
		FirstSigner:  partner,
		SecondSigner: partner,
	}, invoker)
	require.ErrorIs(err, sandbox.ErrDuplicateOwner)

	// The asset minted before the wallet step must not survive.
	res, err := launcher.Launch(ctx, launch.Request{Symbol: "OK", Name: "Okay"}, invoker)
	require.NoError(err)
	bal, err := sub.Ledger().BalanceOf(ctx, res.Token, res.Wallet)
	require.NoError(err)
	require.Zero(bal.Cmp(tokens(950_000)))
}
