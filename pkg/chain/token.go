// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"
	"math/big"

	"github.com/luxfi/erc20-go/erc20"
	"github.com/luxfi/geth/common"
)

// TokenInfo holds ERC20 token information
type TokenInfo struct {
	Address     common.Address
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *big.Int
}

// GetTokenInfo reads a launched token's metadata.
func GetTokenInfo(client *Client, tokenAddress common.Address) (*TokenInfo, error) {
	token, err := erc20.NewGGToken(tokenAddress, client.Backend())
	if err != nil {
		return nil, fmt.Errorf("binding token %s: %w", tokenAddress.Hex(), err)
	}
	name, err := token.Name(nil)
	if err != nil {
		return nil, fmt.Errorf("token name query: %w", err)
	}
	symbol, err := token.Symbol(nil)
	if err != nil {
		return nil, fmt.Errorf("token symbol query: %w", err)
	}
	decimals, err := token.Decimals(nil)
	if err != nil {
		return nil, fmt.Errorf("token decimals query: %w", err)
	}
	supply, err := token.TotalSupply(nil)
	if err != nil {
		return nil, fmt.Errorf("token supply query: %w", err)
	}
	return &TokenInfo{
		Address:     tokenAddress,
		Name:        name,
		Symbol:      symbol,
		Decimals:    decimals,
		TotalSupply: supply,
	}, nil
}

// GetTokenBalance reads an account's balance of a launched token.
func GetTokenBalance(client *Client, tokenAddress, account common.Address) (*big.Int, error) {
	token, err := erc20.NewGGToken(tokenAddress, client.Backend())
	if err != nil {
		return nil, fmt.Errorf("binding token %s: %w", tokenAddress.Hex(), err)
	}
	balance, err := token.BalanceOf(nil, account)
	if err != nil {
		return nil, fmt.Errorf("token balance query: %w", err)
	}
	return balance, nil
}

// FormatTokenAmount renders an 18-decimal base-unit amount as a decimal
// string with six fractional digits.
func FormatTokenAmount(amount *big.Int) string {
	value := new(big.Float).SetInt(amount)
	value.Quo(value, big.NewFloat(1e18))
	return value.Text('f', 6)
}
