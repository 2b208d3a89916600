// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetNetwork(t *testing.T) {
	require := require.New(t)

	require.Equal(&BaseMainnet, GetNetwork("base"))
	require.Equal(&BaseMainnet, GetNetwork("base-mainnet"))
	require.Equal(&BaseSepolia, GetNetwork("base-sepolia"))
	require.Equal(&BaseSepolia, GetNetwork("testnet"))
	require.Nil(GetNetwork("mainnet-of-nowhere"))
}

func TestGetNetworkByChainID(t *testing.T) {
	require := require.New(t)

	require.Equal(&BaseMainnet, GetNetworkByChainID(8453))
	require.Equal(&BaseSepolia, GetNetworkByChainID(84532))
	require.Nil(GetNetworkByChainID(1))
}

func TestNetworkAddresses(t *testing.T) {
	require := require.New(t)

	// Both networks share the treasury; everything else is per-network.
	require.Equal(BaseMainnet.Treasury, BaseSepolia.Treasury)
	require.Equal("0xF698340aa648DCF6bAbDeb93B0878A08755Bcd69", BaseMainnet.Treasury.Hex())
	require.NotEqual(BaseMainnet.USDC, BaseSepolia.USDC)
	require.NotEqual(BaseMainnet.PoolManager, BaseSepolia.PoolManager)
}
