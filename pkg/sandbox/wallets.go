// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sandbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/luxfi/geth/common"
)

var (
	ErrNoOwners       = errors.New("owner set cannot be empty")
	ErrZeroOwner      = errors.New("owner cannot be zero address")
	ErrDuplicateOwner = errors.New("duplicate owner")
	ErrBadThreshold   = errors.New("threshold out of range")
	ErrUnknownWallet  = errors.New("unknown wallet")
)

type walletState struct {
	owners    []common.Address
	threshold int
}

func (w *walletState) clone() *walletState {
	return &walletState{
		owners:    append([]common.Address(nil), w.owners...),
		threshold: w.threshold,
	}
}

// Wallets deploys threshold-authorization wallet records. Validation mirrors
// the Safe proxy factory: duplicate or zero owners are rejected here, not by
// the orchestrator.
type Wallets struct {
	sub     *Substrate
	wallets map[common.Address]*walletState
}

func (w *Wallets) Deploy(_ context.Context, owners []common.Address, threshold int) (common.Address, error) {
	if len(owners) == 0 {
		return common.Address{}, ErrNoOwners
	}
	if threshold < 1 || threshold > len(owners) {
		return common.Address{}, fmt.Errorf("%w: %d of %d", ErrBadThreshold, threshold, len(owners))
	}
	seen := make(map[common.Address]bool, len(owners))
	for _, owner := range owners {
		if owner == (common.Address{}) {
			return common.Address{}, ErrZeroOwner
		}
		if seen[owner] {
			return common.Address{}, fmt.Errorf("%w: %s", ErrDuplicateOwner, owner.Hex())
		}
		seen[owner] = true
	}

	w.sub.mu.Lock()
	defer w.sub.mu.Unlock()
	addr := w.sub.newAddress("sandbox/wallet")
	w.wallets[addr] = &walletState{
		owners:    append([]common.Address(nil), owners...),
		threshold: threshold,
	}
	return addr, nil
}

func (w *Wallets) Owners(_ context.Context, wallet common.Address) ([]common.Address, error) {
	w.sub.mu.Lock()
	defer w.sub.mu.Unlock()
	ws, ok := w.wallets[wallet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWallet, wallet.Hex())
	}
	return append([]common.Address(nil), ws.owners...), nil
}

func (w *Wallets) Threshold(_ context.Context, wallet common.Address) (int, error) {
	w.sub.mu.Lock()
	defer w.sub.mu.Unlock()
	ws, ok := w.wallets[wallet]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownWallet, wallet.Hex())
	}
	return ws.threshold, nil
}
