// Copyright (C) 2025, TIPL Labs. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	luxlog "github.com/luxfi/log"
	"github.com/tipl-labs/launchpad/pkg/config"
	"github.com/tipl-labs/launchpad/pkg/constants"
)

type TIPL struct {
	Log     luxlog.Logger
	baseDir string
	Conf    *config.Config
}

func New() *TIPL {
	return &TIPL{}
}

func (app *TIPL) Setup(baseDir string, log luxlog.Logger, conf *config.Config) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
}

func (app *TIPL) GetBaseDir() string {
	return app.baseDir
}

func (app *TIPL) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *TIPL) ConfigFileExists() bool {
	return app.Conf.ConfigFileExists()
}
