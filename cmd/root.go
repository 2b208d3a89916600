// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/luxfi/filesystem/perms"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tipl-labs/launchpad/cmd/configcmd"
	"github.com/tipl-labs/launchpad/cmd/factorycmd"
	"github.com/tipl-labs/launchpad/cmd/launchcmd"
	"github.com/tipl-labs/launchpad/cmd/poolcmd"
	"github.com/tipl-labs/launchpad/pkg/application"
	"github.com/tipl-labs/launchpad/pkg/config"
	"github.com/tipl-labs/launchpad/pkg/constants"
	"github.com/tipl-labs/launchpad/pkg/ux"
)

var (
	app        *application.TIPL
	logFactory luxlog.Factory

	logLevel string
	Version  = "0.3.1"
	cfgFile  string
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "tipl",
		Long: `TIPL launchpad - provision complete asset launches.

A launch mints a fixed 1,000,000-token supply, deploys a 1-of-1 or 2-of-2
multisig wallet, sends 5% to the TIPL treasury, optionally seeds a liquidity
pool against USDC, and delivers the remainder to the wallet - all as a
single atomic operation.

COMMAND OVERVIEW:

  launch      Run a complete asset launch (sandbox or on-chain)
  factory     Stamp out standalone fixed-supply tokens
  pool        Pool math utilities
  config      CLI configuration

QUICK START:

  # Dry-run a launch in the in-memory sandbox
  tipl launch --symbol ACME --name "Acme Corp TIPL" --pool --sandbox

  # Launch on Base mainnet
  tipl launch --symbol ACME --name "Acme Corp TIPL" --pool \
    --network base --private-key 0x...

For detailed command help, use: tipl <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tipl/cli.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")

	rootCmd.AddCommand(launchcmd.NewCmd(app))
	rootCmd.AddCommand(factorycmd.NewCmd(app))
	rootCmd.AddCommand(poolcmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	if logLevel != "" {
		level, err := luxlog.ToLevel(logLevel)
		if err == nil {
			logFactory.SetLogLevel("tipl", level)
			logFactory.SetDisplayLevel("tipl", level)
		}
	}

	cf := config.New()
	app.Setup(baseDir, log, cf)

	initConfig()
	return nil
}

func setupEnv() (string, error) {
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	if err := os.MkdirAll(baseDir, constants.DefaultPerms755); err != nil {
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel = luxlog.Level(-6) // Info level for file logging
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// Register ux package as internal so caller tracking shows actual source, not the wrapper
	luxlog.RegisterInternalPackages("github.com/tipl-labs/launchpad/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make("tipl")
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	logFactory = factory
	// User output goes to stdout, logs go to stderr
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		tiplDir := filepath.Join(home, constants.BaseDirName) // ~/.tipl/
		viper.AddConfigPath(tiplDir)
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName) // cli.json
	}

	_ = viper.BindEnv(constants.ConfigRPCKey, constants.EnvRPC)

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		app.Log.Debug("using config file", "config-file", viper.ConfigFileUsed())
	}
	// No config file is normal - most users don't have one, so we silently continue
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
