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
)

// DefaultPoolFeeBps is the haircut the registry takes from seed liquidity,
// in basis points. Callers must consume the reported amount verbatim and
// never assume this rate.
const DefaultPoolFeeBps = 10

var (
	ErrSamePair   = errors.New("pool pair must be two distinct assets")
	ErrEmptySeed  = errors.New("seed liquidity must be positive")
	ErrNoPosition = errors.New("no position receipt")
)

type poolState struct {
	asset     common.Address
	counter   common.Address
	liquidity *big.Int
}

func (p *poolState) clone() *poolState {
	return &poolState{
		asset:     p.asset,
		counter:   p.counter,
		liquidity: new(big.Int).Set(p.liquidity),
	}
}

// Pools pairs a launched asset against a counter asset, consumes seed
// liquidity minus the haircut, and mints a position receipt to a designated
// owner. Pool IDs are stable per asset pair; re-seeding an existing pair
// reuses the pool record.
type Pools struct {
	sub      *Substrate
	feeBps   int64
	pools    map[common.Hash]*poolState
	byPair   map[[2]common.Address]common.Hash
	receipts map[common.Hash][]common.Address
}

// SetFeeBps adjusts the haircut. Intended for tests and local tuning.
func (p *Pools) SetFeeBps(bps int64) {
	p.sub.mu.Lock()
	defer p.sub.mu.Unlock()
	p.feeBps = bps
}

func (p *Pools) FeeBps() int64 {
	p.sub.mu.Lock()
	defer p.sub.mu.Unlock()
	return p.feeBps
}

func (p *Pools) InitializePool(_ context.Context, asset, counter common.Address, seed *big.Int, payer, receiptOwner common.Address) (common.Hash, *big.Int, error) {
	if asset == counter {
		return common.Hash{}, nil, ErrSamePair
	}
	if seed == nil || seed.Sign() <= 0 {
		return common.Hash{}, nil, ErrEmptySeed
	}
	if receiptOwner == (common.Address{}) {
		return common.Hash{}, nil, ErrZeroHolder
	}

	p.sub.mu.Lock()
	defer p.sub.mu.Unlock()

	pair := [2]common.Address{asset, counter}
	id, exists := p.byPair[pair]
	if !exists {
		id = poolID(asset, counter)
	}

	fee := new(big.Int).Mul(seed, big.NewInt(p.feeBps))
	fee.Div(fee, big.NewInt(10_000))
	consumed := new(big.Int).Sub(seed, fee)

	// The consumed side leaves the payer for the pool's own account; the
	// haircut remainder never leaves the payer at all.
	if err := p.sub.ledger.transferLocked(asset, payer, poolAccount(id), consumed); err != nil {
		return common.Hash{}, nil, fmt.Errorf("consuming seed liquidity: %w", err)
	}

	if exists {
		p.pools[id].liquidity.Add(p.pools[id].liquidity, consumed)
	} else {
		p.pools[id] = &poolState{
			asset:     asset,
			counter:   counter,
			liquidity: new(big.Int).Set(consumed),
		}
		p.byPair[pair] = id
	}
	p.receipts[id] = append(p.receipts[id], receiptOwner)

	return id, consumed, nil
}

// Liquidity reports a pool's consumed liquidity on the asset side.
func (p *Pools) Liquidity(_ context.Context, id common.Hash) (*big.Int, error) {
	p.sub.mu.Lock()
	defer p.sub.mu.Unlock()
	pool, ok := p.pools[id]
	if !ok {
		return nil, fmt.Errorf("unknown pool %s", id.Hex())
	}
	return new(big.Int).Set(pool.liquidity), nil
}

// Positions counts the position receipts held by owner across all pools.
func (p *Pools) Positions(_ context.Context, owner common.Address) int {
	p.sub.mu.Lock()
	defer p.sub.mu.Unlock()
	n := 0
	for _, owners := range p.receipts {
		for _, o := range owners {
			if o == owner {
				n++
			}
		}
	}
	return n
}

// PositionOwner returns the holder of the first receipt minted for a pool.
func (p *Pools) PositionOwner(_ context.Context, id common.Hash) (common.Address, error) {
	p.sub.mu.Lock()
	defer p.sub.mu.Unlock()
	owners := p.receipts[id]
	if len(owners) == 0 {
		return common.Address{}, fmt.Errorf("%w for pool %s", ErrNoPosition, id.Hex())
	}
	return owners[0], nil
}

// poolID is stable per ordered asset pair and never the zero sentinel.
func poolID(asset, counter common.Address) common.Hash {
	return common.BytesToHash(crypto.Keccak256(asset.Bytes(), counter.Bytes()))
}

// poolAccount is the ledger account holding a pool's consumed liquidity.
func poolAccount(id common.Hash) common.Address {
	return common.BytesToAddress(id[12:])
}
