// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sandbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/luxfi/geth/common"

	"github.com/tipl-labs/launchpad/pkg/launch"
)

var ErrZeroRecipient = errors.New("recipient cannot be zero address")

// Factory stamps out one fixed-supply asset per call and keeps an append-only
// list of everything it created. No distribution logic, no wallet handling.
type Factory struct {
	sub    *Substrate
	tokens []common.Address
}

func (f *Factory) CreateToken(ctx context.Context, name, symbol string, recipient common.Address) (common.Address, error) {
	if recipient == (common.Address{}) {
		return common.Address{}, ErrZeroRecipient
	}
	token, err := f.sub.ledger.Mint(ctx, name, symbol, launch.TotalSupply(), recipient)
	if err != nil {
		return common.Address{}, err
	}
	f.sub.mu.Lock()
	defer f.sub.mu.Unlock()
	f.tokens = append(f.tokens, token)
	return token, nil
}

func (f *Factory) TokenCount(_ context.Context) int {
	f.sub.mu.Lock()
	defer f.sub.mu.Unlock()
	return len(f.tokens)
}

func (f *Factory) Tokens(_ context.Context) []common.Address {
	f.sub.mu.Lock()
	defer f.sub.mu.Unlock()
	return append([]common.Address(nil), f.tokens...)
}

func (f *Factory) TokenAt(_ context.Context, i int) (common.Address, error) {
	f.sub.mu.Lock()
	defer f.sub.mu.Unlock()
	if i < 0 || i >= len(f.tokens) {
		return common.Address{}, fmt.Errorf("token index %d out of range", i)
	}
	return f.tokens[i], nil
}
