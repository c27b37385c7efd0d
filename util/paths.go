// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsurePlainName - a file name without any directory part
func EnsurePlainName(name string) error {
	switch filepath.Dir(name) {
	case "", ".":
		if "" == name || "." == name || ".." == name {
			return fault.ErrNotAPlainFileName
		}
		return nil
	default:
		return fault.ErrNotAPlainFileName
	}
}

// EnsureDirectory - the path must already exist and be a directory
func EnsureDirectory(directory string) error {
	fileInfo, err := os.Stat(directory)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fault.ErrNotADirectory
	}
	return nil
}
