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

	"github.com/tipl-labs/launchpad/pkg/launch"
)

const setupCompleteEvent = "TIPLSetupComplete"

// Setup drives the deployed TIPLSetup contract. The contract executes the
// whole launch sequence inside one transaction, so atomicity comes from the
// chain; this binding sends the transaction and decodes the completion event.
type Setup struct {
	client   *Client
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
}

func NewSetup(client *Client, address common.Address) (*Setup, error) {
	if address == (common.Address{}) {
		return nil, fmt.Errorf("setup contract address not configured")
	}
	parsed, err := abi.JSON(strings.NewReader(SetupABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse setup ABI: %w", err)
	}
	backend := client.Backend()
	return &Setup{
		client:   client,
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
	}, nil
}

// Launch submits one setup transaction and waits for it to be mined. A zero
// FirstSigner defers to the transaction sender on chain; a zero SecondSigner
// requests a single-owner wallet.
func (s *Setup) Launch(ctx context.Context, req launch.Request) (*launch.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	opts, err := s.client.transactOpts(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.contract.Transact(opts, "setupTIPL",
		req.Symbol, req.Name, req.FirstSigner, req.SecondSigner, req.CreatePool)
	if err != nil {
		return nil, fmt.Errorf("setup transaction failed: %w", err)
	}

	receipt, err := bind.WaitMined(ctx, s.client.Backend(), tx)
	if err != nil {
		return nil, fmt.Errorf("waiting for setup transaction %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("setup transaction %s reverted", tx.Hash().Hex())
	}

	return s.parseResult(receipt)
}

func (s *Setup) parseResult(receipt *types.Receipt) (*launch.Result, error) {
	eventID := s.abi.Events[setupCompleteEvent].ID
	for _, lg := range receipt.Logs {
		if lg.Address != s.address || len(lg.Topics) == 0 || lg.Topics[0] != eventID {
			continue
		}
		var ev struct {
			Name     string
			Symbol   string
			Token    common.Address
			Multisig common.Address
			PoolId   common.Hash
		}
		if err := s.contract.UnpackLog(&ev, setupCompleteEvent, *lg); err != nil {
			return nil, fmt.Errorf("decoding completion event: %w", err)
		}
		return &launch.Result{
			Name:   ev.Name,
			Symbol: ev.Symbol,
			Token:  ev.Token,
			Wallet: ev.Multisig,
			PoolID: ev.PoolId,
		}, nil
	}
	return nil, fmt.Errorf("completion event not found in receipt %s", receipt.TxHash.Hex())
}

// PositionBalance reports how many position receipts the position manager
// has minted to owner.
func PositionBalance(ctx context.Context, client *Client, owner common.Address) (*big.Int, error) {
	parsed, err := abi.JSON(strings.NewReader(ERC721ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ERC721 ABI: %w", err)
	}
	backend := client.Backend()
	manager := bind.NewBoundContract(client.Network().PositionManager, parsed, backend, backend, backend)

	var out []interface{}
	if err := manager.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", owner); err != nil {
		return nil, fmt.Errorf("position balance query: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty position balance result")
	}
	return out[0].(*big.Int), nil
}
