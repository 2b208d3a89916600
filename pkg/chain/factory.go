// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/luxfi/geth/accounts/abi"
	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/core/types"
)

const tokenCreatedEvent = "TokenCreated"

// Factory drives the deployed TokenFactory contract: one fixed-supply token
// per call, appended to the contract's public list.
type Factory struct {
	client   *Client
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

func NewFactory(client *Client, address common.Address) (*Factory, error) {
	if address == (common.Address{}) {
		return nil, fmt.Errorf("factory contract address not configured")
	}
	parsed, err := abi.JSON(strings.NewReader(FactoryABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse factory ABI: %w", err)
	}
	backend := client.Backend()
	return &Factory{
		client:   client,
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

// CreateToken mints a new fixed-supply token directly to recipient and
// returns the token address from the creation event. The contract rejects
// the zero address; that surfaces as a reverted transaction.
func (f *Factory) CreateToken(ctx context.Context, name, symbol string, recipient common.Address) (common.Address, error) {
	opts, err := f.client.transactOpts(ctx)
	if err != nil {
		return common.Address{}, err
	}

	tx, err := f.contract.Transact(opts, "createToken", name, symbol, recipient)
	if err != nil {
		return common.Address{}, fmt.Errorf("createToken transaction failed: %w", err)
	}
	receipt, err := bind.WaitMined(ctx, f.client.Backend(), tx)
	if err != nil {
		return common.Address{}, fmt.Errorf("waiting for createToken transaction %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Address{}, fmt.Errorf("createToken transaction %s reverted", tx.Hash().Hex())
	}

	eventID := f.abi.Events[tokenCreatedEvent].ID
	for _, lg := range receipt.Logs {
		if lg.Address != f.address || len(lg.Topics) == 0 || lg.Topics[0] != eventID {
			continue
		}
		var ev struct {
			TokenAddress common.Address
			Name         string
			Symbol       string
			Recipient    common.Address
		}
		if err := f.contract.UnpackLog(&ev, tokenCreatedEvent, *lg); err != nil {
			return common.Address{}, fmt.Errorf("decoding creation event: %w", err)
		}
		return ev.TokenAddress, nil
	}
	return common.Address{}, fmt.Errorf("creation event not found in receipt %s", receipt.TxHash.Hex())
}

// TokenCount returns the number of tokens the factory has deployed.
func (f *Factory) TokenCount(ctx context.Context) (*big.Int, error) {
	var out []interface{}
	if err := f.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getDeployedTokenCount"); err != nil {
		return nil, fmt.Errorf("token count query: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty token count result")
	}
	return out[0].(*big.Int), nil
}

// Tokens returns the factory's full append-only token list.
func (f *Factory) Tokens(ctx context.Context) ([]common.Address, error) {
	var out []interface{}
	if err := f.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getDeployedTokens"); err != nil {
		return nil, fmt.Errorf("token list query: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty token list result")
	}
	return out[0].([]common.Address), nil
}
