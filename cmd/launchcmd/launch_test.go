// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package launchcmd

import (
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"

	"github.com/tipl-labs/launchpad/pkg/launch"
)

func TestBuildRequest(t *testing.T) {
	require := require.New(t)

	req, err := buildRequest(LaunchFlags{
		symbol:     "ACME",
		name:       "Acme Corp TIPL",
		createPool: true,
	})
	require.NoError(err)
	require.Equal("ACME", req.Symbol)
	require.Equal("Acme Corp TIPL", req.Name)
	require.True(req.CreatePool)
	// Unset signer flags map to the zero-address sentinels.
	require.Equal(common.Address{}, req.FirstSigner)
	require.Equal(common.Address{}, req.SecondSigner)
}

func TestBuildRequestWithSigners(t *testing.T) {
	require := require.New(t)

	first := "0x2000000000000000000000000000000000000002"
	second := "0x3000000000000000000000000000000000000003"
	req, err := buildRequest(LaunchFlags{
		symbol:       "ACME",
		name:         "Acme Corp TIPL",
		firstSigner:  first,
		secondSigner: second,
	})
	require.NoError(err)
	require.Equal(common.HexToAddress(first), req.FirstSigner)
	require.Equal(common.HexToAddress(second), req.SecondSigner)
}

func TestBuildRequestValidation(t *testing.T) {
	require := require.New(t)

	_, err := buildRequest(LaunchFlags{name: "No Symbol"})
	require.ErrorIs(err, launch.ErrEmptySymbol)

	_, err = buildRequest(LaunchFlags{symbol: "NONAME"})
	require.ErrorIs(err, launch.ErrEmptyName)

	_, err = buildRequest(LaunchFlags{symbol: "ACME", name: "Acme", firstSigner: "not-an-address"})
	require.ErrorContains(err, "--first-signer")

	_, err = buildRequest(LaunchFlags{symbol: "ACME", name: "Acme", secondSigner: "0x123"})
	require.ErrorContains(err, "--second-signer")
}

func TestParseSigner(t *testing.T) {
	require := require.New(t)

	addr, err := parseSigner("")
	require.NoError(err)
	require.Equal(common.Address{}, addr)

	addr, err = parseSigner("0x2000000000000000000000000000000000000002")
	require.NoError(err)
	require.Equal(common.HexToAddress("0x2000000000000000000000000000000000000002"), addr)

	_, err = parseSigner("bogus")
	require.Error(err)
}
