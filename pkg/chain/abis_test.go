// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"strings"
	"testing"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/stretchr/testify/require"
)

func TestSetupABI(t *testing.T) {
	require := require.New(t)

	parsed, err := abi.JSON(strings.NewReader(SetupABI))
	require.NoError(err)

	method, ok := parsed.Methods["setupTIPL"]
	require.True(ok)
	require.Len(method.Inputs, 5)

	event, ok := parsed.Events[setupCompleteEvent]
	require.True(ok)
	require.Len(event.Inputs, 5)
	for _, input := range event.Inputs {
		require.False(input.Indexed, "event field %s", input.Name)
	}
}

func TestFactoryABI(t *testing.T) {
	require := require.New(t)

	parsed, err := abi.JSON(strings.NewReader(FactoryABI))
	require.NoError(err)

	for _, name := range []string{"createToken", "getDeployedTokenCount", "getDeployedTokens", "deployedTokens"} {
		_, ok := parsed.Methods[name]
		require.True(ok, "missing method %s", name)
	}
	_, ok := parsed.Events[tokenCreatedEvent]
	require.True(ok)
}

func TestERC721ABI(t *testing.T) {
	require := require.New(t)

	parsed, err := abi.JSON(strings.NewReader(ERC721ABI))
	require.NoError(err)
	_, ok := parsed.Methods["balanceOf"]
	require.True(ok)
}
