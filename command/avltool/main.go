// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--watch] [--config-file=FILE] [script-file]", program)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides
	if len(arguments) > 1 {
		exitwithstatus.Message("%s: only one script file is allowed, %d were given", program, len(arguments))
	} else if 1 == len(arguments) {
		theConfiguration.Script, err = filepath.Abs(arguments[0])
		if nil != err {
			exitwithstatus.Message("%s: invalid script file: %q  error: %s", program, arguments[0], err)
		}
	}
	if len(options["watch"]) > 0 {
		theConfiguration.Watch = true
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels = map[string]string{
			logger.DefaultTag: "debug",
		}
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", theConfiguration)

	scriptLog := logger.New("script")
	run := func() error {
		s := newSession(scriptLog, theConfiguration.Trees, os.Stdout, os.Stderr, theConfiguration.OutputDirectory)
		return s.runFile(theConfiguration.Script)
	}

	err = run()
	if !theConfiguration.Watch {
		if nil != err {
			log.Errorf("script: %q  error: %s", theConfiguration.Script, err)
			exitwithstatus.Message("%s: script: %q  error: %s", program, theConfiguration.Script, err)
		}
		return
	}
	if nil != err {
		log.Warnf("script: %q  error: %s", theConfiguration.Script, err)
	}

	channels := watcherChannels{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newScriptWatcher(theConfiguration.Script, logger.New(watcherLoggerPrefix), channels)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err = watcher.start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.stop()

	// wait for CTRL-C SIGINT or SIGQUIT or SIGTERM
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	delay := time.Duration(theConfiguration.RefreshDelay) * time.Millisecond

loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			break loop

		case <-channels.remove:
			log.Infof("script: %q removed", theConfiguration.Script)
			break loop

		case <-channels.change:
			// let the writer finish before reading
			time.Sleep(delay)
			if err := run(); nil != err {
				log.Warnf("script: %q  error: %s", theConfiguration.Script, err)
			}
		}
	}
}
