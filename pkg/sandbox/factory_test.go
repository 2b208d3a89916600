// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package sandbox

import (
	"context"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"

	"github.com/tipl-labs/launchpad/pkg/launch"
)

func TestFactoryCreateToken(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	sub := New()

	token, err := sub.Factory().CreateToken(ctx, "Test Token", "TEST", alice)
	require.NoError(err)
	require.NotEqual(common.Address{}, token)

	// The full fixed supply lands on the recipient, nothing held back.
	bal, err := sub.Ledger().BalanceOf(ctx, token, alice)
	require.NoError(err)
	require.Zero(bal.Cmp(launch.TotalSupply()))

	name, symbol, decimals, supply, err := sub.Ledger().Info(ctx, token)
	require.NoError(err)
	require.Equal("Test Token", name)
	require.Equal("TEST", symbol)
	require.Equal(uint8(launch.TokenDecimals), decimals)
	require.Zero(supply.Cmp(launch.TotalSupply()))
}

func TestFactoryRejectsZeroRecipient(t *testing.T) {
	require := require.New(t)
	sub := New()

	_, err := sub.Factory().CreateToken(context.Background(), "T", "T", common.Address{})
	require.ErrorIs(err, ErrZeroRecipient)
	require.Zero(sub.Factory().TokenCount(context.Background()))
}

func TestFactoryListIsAppendOnly(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	sub := New()

	first, err := sub.Factory().CreateToken(ctx, "One", "ONE", alice)
	require.NoError(err)
	second, err := sub.Factory().CreateToken(ctx, "Two", "TWO", bob)
	require.NoError(err)
	require.NotEqual(first, second)

	require.Equal(2, sub.Factory().TokenCount(ctx))
	require.Equal([]common.Address{first, second}, sub.Factory().Tokens(ctx))

	at, err := sub.Factory().TokenAt(ctx, 1)
	require.NoError(err)
	require.Equal(second, at)

	_, err = sub.Factory().TokenAt(ctx, 2)
	require.Error(err)
	_, err = sub.Factory().TokenAt(ctx, -1)
	require.Error(err)
}
