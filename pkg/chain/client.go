// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/luxfi/crypto"
	"github.com/luxfi/geth/accounts/abi/bind"
	"github.com/luxfi/geth/common"
	"github.com/luxfi/geth/ethclient"
	bip39 "github.com/luxfi/go-bip39"

	"github.com/tipl-labs/launchpad/pkg/constants"
)

// Client wraps an RPC connection and the signing wallet used to drive the
// setup and factory contracts.
type Client struct {
	config  *NetworkConfig
	eth     *ethclient.Client
	auth    *bind.TransactOpts
	address common.Address
	chainID *big.Int
}

// NewClient connects to the network's RPC endpoint and verifies its chain ID.
func NewClient(config *NetworkConfig) (*Client, error) {
	client, err := ethclient.Dial(config.RPC)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", config.RPC, err)
	}

	chainID, err := client.ChainID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if chainID.Int64() != config.ChainID {
		return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d", config.ChainID, chainID.Int64())
	}

	return &Client{
		config:  config,
		eth:     client,
		chainID: chainID,
	}, nil
}

// LoadWallet loads the signing wallet with optional private key parameter.
// Priority: passed key > TIPL_PRIVATE_KEY env > TIPL_MNEMONIC env.
func (c *Client) LoadWallet(privateKey string) error {
	var key *ecdsa.PrivateKey
	var err error

	if privateKey != "" {
		key, err = crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
		if err != nil {
			return fmt.Errorf("invalid private key: %w", err)
		}
	}

	if key == nil {
		if envKey := os.Getenv(constants.EnvPrivateKey); envKey != "" {
			key, err = crypto.HexToECDSA(strings.TrimPrefix(envKey, "0x"))
			if err != nil {
				return fmt.Errorf("invalid %s: %w", constants.EnvPrivateKey, err)
			}
		}
	}

	if key == nil {
		mnemonic := os.Getenv(constants.EnvMnemonic)
		if mnemonic == "" {
			return fmt.Errorf("no wallet credentials provided: use --private-key, %s, or %s",
				constants.EnvPrivateKey, constants.EnvMnemonic)
		}
		seed := bip39.NewSeed(mnemonic, "")
		key, err = deriveKey(seed)
		if err != nil {
			return fmt.Errorf("failed to derive key: %w", err)
		}
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, c.chainID)
	if err != nil {
		return fmt.Errorf("failed to create transactor: %w", err)
	}

	c.auth = auth
	c.address = auth.From
	return nil
}

// Address returns the wallet address
func (c *Client) Address() common.Address {
	return c.address
}

// ChainID returns the connected chain's ID
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// Network returns the network configuration
func (c *Client) Network() *NetworkConfig {
	return c.config
}

// Backend exposes the raw RPC client for contract bindings
func (c *Client) Backend() *ethclient.Client {
	return c.eth
}

func (c *Client) Close() {
	c.eth.Close()
}

// transactOpts returns a copy of the transactor bound to ctx.
func (c *Client) transactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.auth == nil {
		return nil, fmt.Errorf("wallet not loaded")
	}
	opts := *c.auth
	opts.Context = ctx
	return &opts, nil
}

// deriveKey derives a private key from seed using BIP44 path m/44'/60'/0'/0/0
func deriveKey(seed []byte) (*ecdsa.PrivateKey, error) {
	masterKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	// m/44'/60'/0'/0/0, the standard Ethereum path
	purpose, err := masterKey.Derive(hdkeychain.HardenedKeyStart + 44)
	if err != nil {
		return nil, err
	}
	coinType, err := purpose.Derive(hdkeychain.HardenedKeyStart + 60)
	if err != nil {
		return nil, err
	}
	account, err := coinType.Derive(hdkeychain.HardenedKeyStart + 0)
	if err != nil {
		return nil, err
	}
	change, err := account.Derive(0)
	if err != nil {
		return nil, err
	}
	addressKey, err := change.Derive(0)
	if err != nil {
		return nil, err
	}

	ecPrivKey, err := addressKey.ECPrivKey()
	if err != nil {
		return nil, err
	}
	return ecPrivKey.ToECDSA(), nil
}
