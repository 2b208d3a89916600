// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sandbox is an in-memory execution substrate for launches: a ledger,
// a wallet provisioner, a pool registry, and a token factory backed by plain
// maps, with snapshot/revert so a launch can be rolled back as one unit.
// It exists so the orchestrator and its callers can run without a node.
package sandbox

import (
	"encoding/binary"
	"sync"

	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/common"
)

type Substrate struct {
	mu      sync.Mutex
	counter uint64

	ledger  *Ledger
	wallets *Wallets
	pools   *Pools
	factory *Factory

	snaps []*worldState
}

// worldState is a deep copy of everything a revert must restore.
type worldState struct {
	counter  uint64
	assets   map[common.Address]*assetState
	wallets  map[common.Address]*walletState
	pools    map[common.Hash]*poolState
	byPair   map[[2]common.Address]common.Hash
	receipts map[common.Hash][]common.Address
	tokens   []common.Address
}

func New() *Substrate {
	s := &Substrate{}
	s.ledger = &Ledger{sub: s, assets: make(map[common.Address]*assetState)}
	s.wallets = &Wallets{sub: s, wallets: make(map[common.Address]*walletState)}
	s.pools = &Pools{
		sub:      s,
		feeBps:   DefaultPoolFeeBps,
		pools:    make(map[common.Hash]*poolState),
		byPair:   make(map[[2]common.Address]common.Hash),
		receipts: make(map[common.Hash][]common.Address),
	}
	s.factory = &Factory{sub: s}
	return s
}

func (s *Substrate) Ledger() *Ledger   { return s.ledger }
func (s *Substrate) Wallets() *Wallets { return s.wallets }
func (s *Substrate) Pools() *Pools     { return s.pools }
func (s *Substrate) Factory() *Factory { return s.factory }

// Snapshot records the current world state and returns its id.
func (s *Substrate) Snapshot() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps = append(s.snaps, s.capture())
	return len(s.snaps) - 1
}

// RevertToSnapshot restores the world state captured under id. Snapshots
// taken after id are invalidated, matching EVM snapshot semantics.
func (s *Substrate) RevertToSnapshot(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 0 || id >= len(s.snaps) {
		return
	}
	s.restore(s.snaps[id])
	s.snaps = s.snaps[:id]
}

func (s *Substrate) capture() *worldState {
	w := &worldState{
		counter:  s.counter,
		assets:   make(map[common.Address]*assetState, len(s.ledger.assets)),
		wallets:  make(map[common.Address]*walletState, len(s.wallets.wallets)),
		pools:    make(map[common.Hash]*poolState, len(s.pools.pools)),
		byPair:   make(map[[2]common.Address]common.Hash, len(s.pools.byPair)),
		receipts: make(map[common.Hash][]common.Address, len(s.pools.receipts)),
		tokens:   append([]common.Address(nil), s.factory.tokens...),
	}
	for addr, a := range s.ledger.assets {
		w.assets[addr] = a.clone()
	}
	for addr, wa := range s.wallets.wallets {
		w.wallets[addr] = wa.clone()
	}
	for id, p := range s.pools.pools {
		w.pools[id] = p.clone()
	}
	for pair, id := range s.pools.byPair {
		w.byPair[pair] = id
	}
	for id, owners := range s.pools.receipts {
		w.receipts[id] = append([]common.Address(nil), owners...)
	}
	return w
}

func (s *Substrate) restore(w *worldState) {
	s.counter = w.counter
	s.ledger.assets = make(map[common.Address]*assetState, len(w.assets))
	for addr, a := range w.assets {
		s.ledger.assets[addr] = a.clone()
	}
	s.wallets.wallets = make(map[common.Address]*walletState, len(w.wallets))
	for addr, wa := range w.wallets {
		s.wallets.wallets[addr] = wa.clone()
	}
	s.pools.pools = make(map[common.Hash]*poolState, len(w.pools))
	for id, p := range w.pools {
		s.pools.pools[id] = p.clone()
	}
	s.pools.byPair = make(map[[2]common.Address]common.Hash, len(w.byPair))
	for pair, id := range w.byPair {
		s.pools.byPair[pair] = id
	}
	s.pools.receipts = make(map[common.Hash][]common.Address, len(w.receipts))
	for id, owners := range w.receipts {
		s.pools.receipts[id] = append([]common.Address(nil), owners...)
	}
	s.factory.tokens = append([]common.Address(nil), w.tokens...)
}

// newAddress derives a fresh deterministic address. The kind tag keeps asset,
// wallet, and pool address spaces disjoint.
func (s *Substrate) newAddress(kind string) common.Address {
	s.counter++
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], s.counter)
	digest := crypto.Keccak256([]byte(kind), buf[:])
	return common.BytesToAddress(digest[12:])
}
