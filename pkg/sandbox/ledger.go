// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sandbox

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"

	"github.com/tipl-labs/launchpad/pkg/launch"
)

var (
	ErrUnknownAsset        = errors.New("unknown asset")
	ErrZeroHolder          = errors.New("holder cannot be zero address")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrZeroAmount          = errors.New("amount must be positive")
)

type assetState struct {
	name       string
	symbol     string
	decimals   uint8
	supply     *big.Int
	balances   map[common.Address]*big.Int
	nonces     map[common.Address]uint64
	allowances map[common.Address]map[common.Address]*big.Int
}

func (a *assetState) clone() *assetState {
	c := &assetState{
		name:       a.name,
		symbol:     a.symbol,
		decimals:   a.decimals,
		supply:     new(big.Int).Set(a.supply),
		balances:   make(map[common.Address]*big.Int, len(a.balances)),
		nonces:     make(map[common.Address]uint64, len(a.nonces)),
		allowances: make(map[common.Address]map[common.Address]*big.Int, len(a.allowances)),
	}
	for addr, bal := range a.balances {
		c.balances[addr] = new(big.Int).Set(bal)
	}
	for addr, n := range a.nonces {
		c.nonces[addr] = n
	}
	for owner, spenders := range a.allowances {
		m := make(map[common.Address]*big.Int, len(spenders))
		for spender, amt := range spenders {
			m[spender] = new(big.Int).Set(amt)
		}
		c.allowances[owner] = m
	}
	return c
}

// Ledger mints and tracks fixed-supply assets. Each asset is minted exactly
// once at creation; burn and a permit-shaped delegated approval are supported
// but nothing beyond what the orchestrator and factory need.
type Ledger struct {
	sub    *Substrate
	assets map[common.Address]*assetState
}

func (l *Ledger) Mint(_ context.Context, name, symbol string, supply *big.Int, holder common.Address) (common.Address, error) {
	if holder == (common.Address{}) {
		return common.Address{}, ErrZeroHolder
	}
	if supply == nil || supply.Sign() <= 0 {
		return common.Address{}, ErrZeroAmount
	}
	l.sub.mu.Lock()
	defer l.sub.mu.Unlock()

	addr := l.sub.newAddress("sandbox/asset")
	l.assets[addr] = &assetState{
		name:       name,
		symbol:     symbol,
		decimals:   launch.TokenDecimals,
		supply:     new(big.Int).Set(supply),
		balances:   map[common.Address]*big.Int{holder: new(big.Int).Set(supply)},
		nonces:     make(map[common.Address]uint64),
		allowances: make(map[common.Address]map[common.Address]*big.Int),
	}
	return addr, nil
}

func (l *Ledger) Transfer(_ context.Context, asset, from, to common.Address, amount *big.Int) error {
	if to == (common.Address{}) {
		return ErrZeroHolder
	}
	if amount == nil || amount.Sign() < 0 {
		return ErrZeroAmount
	}
	l.sub.mu.Lock()
	defer l.sub.mu.Unlock()
	return l.transferLocked(asset, from, to, amount)
}

func (l *Ledger) transferLocked(asset, from, to common.Address, amount *big.Int) error {
	a, ok := l.assets[asset]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAsset, asset.Hex())
	}
	bal := a.balances[from]
	if bal == nil || bal.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientBalance, from.Hex(), bal, amount)
	}
	bal.Sub(bal, amount)
	if cur := a.balances[to]; cur != nil {
		cur.Add(cur, amount)
	} else {
		a.balances[to] = new(big.Int).Set(amount)
	}
	return nil
}

func (l *Ledger) BalanceOf(_ context.Context, asset, account common.Address) (*big.Int, error) {
	l.sub.mu.Lock()
	defer l.sub.mu.Unlock()
	a, ok := l.assets[asset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, asset.Hex())
	}
	if bal := a.balances[account]; bal != nil {
		return new(big.Int).Set(bal), nil
	}
	return new(big.Int), nil
}

// Burn destroys amount from the holder's balance and reduces total supply.
func (l *Ledger) Burn(_ context.Context, asset, from common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrZeroAmount
	}
	l.sub.mu.Lock()
	defer l.sub.mu.Unlock()
	a, ok := l.assets[asset]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAsset, asset.Hex())
	}
	bal := a.balances[from]
	if bal == nil || bal.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s has %s, burns %s", ErrInsufficientBalance, from.Hex(), bal, amount)
	}
	bal.Sub(bal, amount)
	a.supply.Sub(a.supply, amount)
	return nil
}

// Permit records a delegated approval and consumes the owner's nonce. The
// signature itself is assumed valid here; validation belongs to the callers
// of a real ledger.
func (l *Ledger) Permit(_ context.Context, asset, owner, spender common.Address, amount *big.Int) error {
	if owner == (common.Address{}) || spender == (common.Address{}) {
		return ErrZeroHolder
	}
	l.sub.mu.Lock()
	defer l.sub.mu.Unlock()
	a, ok := l.assets[asset]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAsset, asset.Hex())
	}
	if a.allowances[owner] == nil {
		a.allowances[owner] = make(map[common.Address]*big.Int)
	}
	a.allowances[owner][spender] = new(big.Int).Set(amount)
	a.nonces[owner]++
	return nil
}

func (l *Ledger) Allowance(_ context.Context, asset, owner, spender common.Address) (*big.Int, error) {
	l.sub.mu.Lock()
	defer l.sub.mu.Unlock()
	a, ok := l.assets[asset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, asset.Hex())
	}
	if spenders := a.allowances[owner]; spenders != nil && spenders[spender] != nil {
		return new(big.Int).Set(spenders[spender]), nil
	}
	return new(big.Int), nil
}

func (l *Ledger) Nonce(_ context.Context, asset, owner common.Address) (uint64, error) {
	l.sub.mu.Lock()
	defer l.sub.mu.Unlock()
	a, ok := l.assets[asset]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAsset, asset.Hex())
	}
	return a.nonces[owner], nil
}

// DomainSeparator is the per-asset domain for delegated-signature approvals.
func (l *Ledger) DomainSeparator(_ context.Context, asset common.Address) (common.Hash, error) {
	l.sub.mu.Lock()
	defer l.sub.mu.Unlock()
	a, ok := l.assets[asset]
	if !ok {
		return common.Hash{}, fmt.Errorf("%w: %s", ErrUnknownAsset, asset.Hex())
	}
	return common.BytesToHash(crypto.Keccak256([]byte(a.name), asset.Bytes())), nil
}

// Info returns an asset's metadata.
func (l *Ledger) Info(_ context.Context, asset common.Address) (name, symbol string, decimals uint8, supply *big.Int, err error) {
	l.sub.mu.Lock()
	defer l.sub.mu.Unlock()
	a, ok := l.assets[asset]
	if !ok {
		return "", "", 0, nil, fmt.Errorf("%w: %s", ErrUnknownAsset, asset.Hex())
	}
	return a.name, a.symbol, a.decimals, new(big.Int).Set(a.supply), nil
}
