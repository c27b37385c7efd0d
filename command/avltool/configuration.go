// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory   = "." // same directory as the config file
	defaultScriptFile      = "avltool.script"
	defaultOutputDirectory = "out"
	defaultRefreshDelay    = 500 // milliseconds

	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// Configuration - everything read from the Lua file
type Configuration struct {
	DataDirectory   string               `gluamapper:"data_directory" json:"data_directory"`
	Script          string               `gluamapper:"script" json:"script"`
	OutputDirectory string               `gluamapper:"output_directory" json:"output_directory"`
	Watch           bool                 `gluamapper:"watch" json:"watch"`
	RefreshDelay    int                  `gluamapper:"refresh_delay" json:"refresh_delay"`
	Trees           map[string][]int     `gluamapper:"trees" json:"trees"`
	Logging         logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults relative to the current
// directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	dataDirectory := ""
	if "" == configurationFileName {
		cwd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		dataDirectory = cwd
	} else {
		name, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		configurationFileName = name

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(configurationFileName)
	}

	options := &Configuration{
		DataDirectory:   defaultDataDirectory,
		Script:          defaultScriptFile,
		OutputDirectory: defaultOutputDirectory,
		Watch:           false,
		RefreshDelay:    defaultRefreshDelay,
		Trees:           map[string][]int{},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				logger.DefaultTag: "info",
			},
		},
	}

	if "" != configurationFileName {
		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	if options.RefreshDelay <= 0 {
		options.RefreshDelay = defaultRefreshDelay
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrNotADirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// log file must be a plain name inside the log directory
	if err := util.EnsurePlainName(options.Logging.File); nil != err {
		return nil, err
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Script,
		&options.OutputDirectory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.OutputDirectory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
