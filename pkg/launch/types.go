// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launch

import (
	"errors"

	"github.com/luxfi/geth/common"
)

var (
	ErrEmptySymbol = errors.New("token symbol must not be empty")
	ErrEmptyName   = errors.New("token name must not be empty")
	ErrZeroInvoker = errors.New("invoker must not be the zero address")
)

// Request describes one asset launch. A zero FirstSigner means "use the
// invoking account"; a zero SecondSigner means "single-owner wallet".
// Symbol collisions are allowed: the ledger always produces a fresh asset.
type Request struct {
	Symbol       string
	Name         string
	FirstSigner  common.Address
	SecondSigner common.Address
	CreatePool   bool
}

func (r Request) Validate() error {
	if r.Symbol == "" {
		return ErrEmptySymbol
	}
	if r.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// OwnerSet is the resolved wallet ownership: 1-of-1 or 2-of-2, nothing else.
type OwnerSet struct {
	Owners    []common.Address
	Threshold int
}

// ResolveOwners derives the wallet owner set from the request. Pure function,
// no side effects. Duplicate owners are passed through untouched; a
// provisioner that rejects them surfaces that as a downstream failure.
func ResolveOwners(req Request, invoker common.Address) OwnerSet {
	first := req.FirstSigner
	if first == (common.Address{}) {
		first = invoker
	}
	if req.SecondSigner == (common.Address{}) {
		return OwnerSet{
			Owners:    []common.Address{first},
			Threshold: 1,
		}
	}
	return OwnerSet{
		Owners:    []common.Address{first, req.SecondSigner},
		Threshold: 2,
	}
}

// Result is the sole durable evidence of a completed launch. PoolID is the
// zero hash when no pool was created.
type Result struct {
	Name   string
	Symbol string
	Token  common.Address
	Wallet common.Address
	PoolID common.Hash
}

func (r Result) HasPool() bool {
	return r.PoolID != (common.Hash{})
}
