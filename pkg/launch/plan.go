// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package launch

import (
	"errors"
	"fmt"
	"math/big"
)

// TokenDecimals is fixed for every launched asset.
const TokenDecimals = 18

var (
	ErrConservation = errors.New("supply conservation violated")

	oneToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals), nil)
)

func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), oneToken)
}

// TotalSupply is the fixed supply minted per launch: 1,000,000 tokens.
func TotalSupply() *big.Int {
	return tokens(1_000_000)
}

// TreasuryShare is the unconditional treasury allocation: 50,000 tokens (5%).
func TreasuryShare() *big.Int {
	return tokens(50_000)
}

// PoolSeed is the liquidity allocation reserved when a pool is requested:
// 200,000 tokens (20%). The registry consumes the seed minus its haircut.
func PoolSeed() *big.Int {
	return tokens(200_000)
}

// Distribution is the final partition of the minted supply. PoolConsumed is
// nil when no pool was seeded; the three (or two) shares always sum to
// TotalSupply with zero remainder.
type Distribution struct {
	TreasuryShare *big.Int
	WalletShare   *big.Int
	PoolConsumed  *big.Int
}

// planDistribution derives the wallet share from the amount the registry
// actually consumed (nil for launches without a pool) and verifies the
// conservation invariant in one place. A failure here is an internal logic
// defect, never a normal runtime condition.
func planDistribution(consumed *big.Int) (Distribution, error) {
	supply := TotalSupply()
	treasury := TreasuryShare()

	wallet := new(big.Int).Sub(supply, treasury)
	if consumed != nil {
		if consumed.Sign() < 0 || consumed.Cmp(PoolSeed()) > 0 {
			return Distribution{}, fmt.Errorf("%w: registry consumed %s of a %s seed",
				ErrConservation, consumed, PoolSeed())
		}
		wallet.Sub(wallet, consumed)
	}
	if wallet.Sign() <= 0 {
		return Distribution{}, fmt.Errorf("%w: wallet share %s", ErrConservation, wallet)
	}

	check := new(big.Int).Add(treasury, wallet)
	if consumed != nil {
		check.Add(check, consumed)
	}
	if check.Cmp(supply) != 0 {
		return Distribution{}, fmt.Errorf("%w: shares sum to %s, supply is %s",
			ErrConservation, check, supply)
	}

	return Distribution{
		TreasuryShare: treasury,
		WalletShare:   wallet,
		PoolConsumed:  consumed,
	}, nil
}
