// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755 = 0o755

	BaseDirName = ".tipl"
	LogDir      = "logs"

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	APIRequestTimeout = 30 * time.Second
	TxTimeout         = 2 * time.Minute

	DefaultConfigFileName = "cli"
	DefaultConfigFileType = "json"

	// Environment variables for wallet credentials and endpoint overrides
	EnvPrivateKey = "TIPL_PRIVATE_KEY"
	EnvMnemonic   = "TIPL_MNEMONIC"
	EnvRPC        = "TIPL_RPC"

	// Config file keys
	ConfigNetworkKey        = "network"
	ConfigRPCKey            = "rpc"
	ConfigSetupAddressKey   = "setup-address"
	ConfigFactoryAddressKey = "factory-address"
)
