// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"

	"github.com/luxfi/crypto"
	bip39 "github.com/luxfi/go-bip39"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	require := require.New(t)

	// Known BIP44 m/44'/60'/0'/0/0 vector.
	mnemonic := "know defense install season surface planet hobby borrow theory security aisle toast"
	seed := bip39.NewSeed(mnemonic, "")

	key, err := deriveKey(seed)
	require.NoError(err)
	require.Equal(
		"0x9011E888251AB053B7bD1cdB598Db4f9DEd94714",
		crypto.PubkeyToAddress(key.PublicKey).Hex(),
	)
}

func TestDeriveKeyIsDeterministic(t *testing.T) {
	require := require.New(t)

	seed := bip39.NewSeed("legal winner thank year wave sausage worth useful legal winner thank yellow", "")
	a, err := deriveKey(seed)
	require.NoError(err)
	b, err := deriveKey(seed)
	require.NoError(err)
	require.Equal(crypto.PubkeyToAddress(a.PublicKey), crypto.PubkeyToAddress(b.PublicKey))
}
