// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package launch provisions a complete asset launch: it mints a fixed-supply
// asset, deploys a threshold wallet, optionally seeds a liquidity pool, and
// partitions the supply across the treasury, the wallet, and the pool. Each
// launch is a single all-or-nothing unit of work; the orchestrator talks only
// to the narrow collaborator ports below and keeps no per-launch state.
package launch

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
)

// AssetLedger mints and tracks balances of fungible assets. Mint creates a
// fresh asset instance with the full supply held by holder; it is never
// re-minted.
type AssetLedger interface {
	Mint(ctx context.Context, name, symbol string, supply *big.Int, holder common.Address) (common.Address, error)
	Transfer(ctx context.Context, asset, from, to common.Address, amount *big.Int) error
	BalanceOf(ctx context.Context, asset, account common.Address) (*big.Int, error)
}

// WalletProvisioner deploys a new threshold-authorization wallet and returns
// its address.
type WalletProvisioner interface {
	Deploy(ctx context.Context, owners []common.Address, threshold int) (common.Address, error)
}

// PoolRegistry initializes (or reuses) a liquidity pool for an asset pair,
// consuming seed liquidity from payer subject to a registry-defined haircut,
// and mints the position receipt to receiptOwner. It reports the amount it
// actually consumed.
type PoolRegistry interface {
	InitializePool(ctx context.Context, asset, counter common.Address, seed *big.Int, payer, receiptOwner common.Address) (common.Hash, *big.Int, error)
}

// Substrate provides the all-or-nothing execution guarantee: every launch
// runs under a snapshot and is rolled back on any failure.
type Substrate interface {
	Snapshot() int
	RevertToSnapshot(id int)
}

// Config wires a Launcher to its collaborators and deployment-time constants.
type Config struct {
	Ledger    AssetLedger
	Wallets   WalletProvisioner
	Pools     PoolRegistry
	Substrate Substrate

	// Holding is the orchestrator's own account: the transient sole holder
	// of the minted supply. Its balance is zero outside a launch.
	Holding common.Address
	// Treasury receives the fixed 5% share of every launch.
	Treasury common.Address
	// CounterAsset is the registry's reference asset for pool pairing.
	CounterAsset common.Address

	Log luxlog.Logger
}

type Launcher struct {
	mu  sync.Mutex
	cfg Config
}

func New(cfg Config) (*Launcher, error) {
	switch {
	case cfg.Ledger == nil:
		return nil, errors.New("launch: nil asset ledger")
	case cfg.Wallets == nil:
		return nil, errors.New("launch: nil wallet provisioner")
	case cfg.Pools == nil:
		return nil, errors.New("launch: nil pool registry")
	case cfg.Substrate == nil:
		return nil, errors.New("launch: nil substrate")
	case cfg.Holding == (common.Address{}):
		return nil, errors.New("launch: zero holding address")
	case cfg.Treasury == (common.Address{}):
		return nil, errors.New("launch: zero treasury address")
	}
	return &Launcher{cfg: cfg}, nil
}

// Launch executes one asset launch on behalf of invoker. All effects apply
// or none do: any collaborator failure or invariant violation reverts the
// substrate to its pre-launch state and surfaces synchronously. Launch never
// retries; re-invoking with identical parameters produces a brand-new,
// distinct asset and wallet.
func (l *Launcher) Launch(ctx context.Context, req Request, invoker common.Address) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if invoker == (common.Address{}) {
		return nil, ErrZeroInvoker
	}
	owners := ResolveOwners(req, invoker)

	// Launches are serialized: units of work execute one at a time against
	// the substrate, so no partial effects are ever observable and reverts
	// cannot undo a concurrent launch.
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := l.cfg.Substrate.Snapshot()
	res, err := l.run(ctx, req, owners)
	if err != nil {
		l.cfg.Substrate.RevertToSnapshot(snap)
		return nil, err
	}
	return res, nil
}

func (l *Launcher) run(ctx context.Context, req Request, owners OwnerSet) (*Result, error) {
	token, err := l.cfg.Ledger.Mint(ctx, req.Name, req.Symbol, TotalSupply(), l.cfg.Holding)
	if err != nil {
		return nil, fmt.Errorf("minting %s: %w", req.Symbol, err)
	}

	wallet, err := l.cfg.Wallets.Deploy(ctx, owners.Owners, owners.Threshold)
	if err != nil {
		return nil, fmt.Errorf("deploying %d-of-%d wallet: %w", owners.Threshold, len(owners.Owners), err)
	}

	// Treasury share moves unconditionally, pool or not.
	if err := l.cfg.Ledger.Transfer(ctx, token, l.cfg.Holding, l.cfg.Treasury, TreasuryShare()); err != nil {
		return nil, fmt.Errorf("treasury transfer: %w", err)
	}

	poolID := common.Hash{}
	var consumed *big.Int
	if req.CreatePool {
		// The position receipt goes straight to the new wallet, not to the
		// orchestrator. The haircut remainder simply stays in the holding
		// account and flows to the wallet with the final transfer.
		poolID, consumed, err = l.cfg.Pools.InitializePool(
			ctx, token, l.cfg.CounterAsset, PoolSeed(), l.cfg.Holding, wallet)
		if err != nil {
			return nil, fmt.Errorf("initializing pool: %w", err)
		}
	}

	dist, err := planDistribution(consumed)
	if err != nil {
		return nil, err
	}
	if err := l.cfg.Ledger.Transfer(ctx, token, l.cfg.Holding, wallet, dist.WalletShare); err != nil {
		return nil, fmt.Errorf("wallet transfer: %w", err)
	}

	// The holding account must end every launch empty.
	left, err := l.cfg.Ledger.BalanceOf(ctx, token, l.cfg.Holding)
	if err != nil {
		return nil, fmt.Errorf("verifying holding balance: %w", err)
	}
	if left.Sign() != 0 {
		return nil, fmt.Errorf("%w: %s stranded in holding account", ErrConservation, left)
	}

	if l.cfg.Log != nil {
		l.cfg.Log.Info("launch complete",
			"symbol", req.Symbol,
			"token", token.Hex(),
			"wallet", wallet.Hex(),
			"pool", poolID.Hex(),
			"walletShare", dist.WalletShare.String(),
		)
	}
	return &Result{
		Name:   req.Name,
		Symbol: req.Symbol,
		Token:  token,
		Wallet: wallet,
		PoolID: poolID,
	}, nil
}
