// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	// LaunchCmd is the launch command name
	LaunchCmd = "launch"

	// FactoryCmd is the factory command name
	FactoryCmd = "factory"

	// PoolCmd is the pool command name
	PoolCmd = "pool"

	// ConfigCmd is the config command name
	ConfigCmd = "config"
)
