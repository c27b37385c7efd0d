// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	logFileName      = "test.log"
	logSizeOfFiles   = 1048576
	logNumberOfFiles = 10
)

// a scratch directory with logging initialised inside it
func setupTestDirectory(t *testing.T) string {
	directory, err := ioutil.TempDir("", "avltool-test-")
	if nil != err {
		t.Fatalf("create temporary directory error: %s", err)
	}

	err = logger.Initialise(logger.Configuration{
		Directory: directory,
		File:      logFileName,
		Size:      logSizeOfFiles,
		Count:     logNumberOfFiles,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		os.RemoveAll(directory)
		t.Fatalf("logger initialise error: %s", err)
	}
	return directory
}

func teardownTestDirectory(directory string) {
	logger.Finalise()
	os.RemoveAll(directory)
}
