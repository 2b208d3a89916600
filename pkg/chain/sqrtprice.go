// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"math/big"
)

// Uniswap tick bounds.
const (
	MinTick = -887272
	MaxTick = 887272
)

// SqrtPriceX96 computes floor(sqrt(1.0001^tick) * 2^96) with exact integer
// arithmetic: 1.0001 = 10001/10000, so the price ratio is 10001^|tick| over
// 10000^|tick| (inverted for negative ticks), shifted by 2^192 before the
// integer square root.
func SqrtPriceX96(tick int) (*big.Int, error) {
	if tick < MinTick || tick > MaxTick {
		return nil, fmt.Errorf("tick %d out of range [%d, %d]", tick, MinTick, MaxTick)
	}

	n := int64(tick)
	if n < 0 {
		n = -n
	}
	num := new(big.Int).Exp(big.NewInt(10001), big.NewInt(n), nil)
	den := new(big.Int).Exp(big.NewInt(10000), big.NewInt(n), nil)
	if tick < 0 {
		num, den = den, num
	}

	// floor(sqrt(num/den) * 2^96) == floor(sqrt(num * 2^192 / den))
	x := new(big.Int).Lsh(num, 192)
	x.Div(x, den)
	return x.Sqrt(x), nil
}
