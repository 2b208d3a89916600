// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "github.com/luxfi/geth/common"

// NetworkConfig holds the deployment-time contract addresses for a network.
// Setup and Factory default to zero and come from the CLI config until the
// contracts are redeployed on a new network.
type NetworkConfig struct {
	ChainID         int64
	RPC             string
	Name            string
	Setup           common.Address
	Factory         common.Address
	Treasury        common.Address
	PoolManager     common.Address
	PositionManager common.Address
	USDC            common.Address
}

// Predefined network configurations
var (
	// Base Mainnet
	BaseMainnet = NetworkConfig{
		ChainID:         8453,
		RPC:             "https://mainnet.base.org",
		Name:            "Base Mainnet",
		Treasury:        common.HexToAddress("0xF698340aa648DCF6bAbDeb93B0878A08755Bcd69"),
		PoolManager:     common.HexToAddress("0x498581fF718922c3f8e6A244956aF099B2652b2b"),
		PositionManager: common.HexToAddress("0x7C5f5A4bBd8fD63184577525326123B519429bDc"),
		USDC:            common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"),
	}

	// Base Sepolia
	BaseSepolia = NetworkConfig{
		ChainID:         84532,
		RPC:             "https://sepolia.base.org",
		Name:            "Base Sepolia",
		Treasury:        common.HexToAddress("0xF698340aa648DCF6bAbDeb93B0878A08755Bcd69"),
		PoolManager:     common.HexToAddress("0x05E73354cFDd6745C338b50BcFDfA3Aa6fA03408"),
		PositionManager: common.HexToAddress("0x4B2C77d209D3405F41a037Ec6c77F7F5b8e2ca80"),
		USDC:            common.HexToAddress("0x036CbD53842c5426634e7929541eC2318f3dCF7e"),
	}

	// Network lookup by chain ID
	Networks = map[int64]*NetworkConfig{
		8453:  &BaseMainnet,
		84532: &BaseSepolia,
	}

	// Network lookup by name
	NetworksByName = map[string]*NetworkConfig{
		"base":         &BaseMainnet,
		"base-mainnet": &BaseMainnet,
		"base-sepolia": &BaseSepolia,
		"sepolia":      &BaseSepolia,
		"testnet":      &BaseSepolia,
	}
)

// GetNetwork returns network config by name
func GetNetwork(name string) *NetworkConfig {
	if cfg, ok := NetworksByName[name]; ok {
		return cfg
	}
	return nil
}

// GetNetworkByChainID returns network config by chain ID
func GetNetworkByChainID(chainID int64) *NetworkConfig {
	return Networks[chainID]
}
