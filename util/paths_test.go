// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		file      string
		expected  string
	}{
		{"/data", "out", "/data/out"},
		{"/data", "out/../log", "/data/log"},
		{"/data", "/var/tmp/x.dot", "/var/tmp/x.dot"},
		{"/data/", "./a.lua", "/data/a.lua"},
	}

	for i, item := range items {
		actual := util.EnsureAbsolute(item.directory, item.file)
		assert.Equal(t, item.expected, actual, "%d: directory: %q  file: %q", i, item.directory, item.file)
	}
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "present")
	require.NoError(t, ioutil.WriteFile(name, []byte("x"), 0600), "write")

	assert.True(t, util.EnsureFileExists(name), "present file")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "absent")), "absent file")
}

func TestEnsurePlainName(t *testing.T) {
	assert.NoError(t, util.EnsurePlainName("tree.dot"), "plain name")
	assert.NoError(t, util.EnsurePlainName("avltool.log"), "plain name")

	for _, name := range []string{"", ".", "..", "out/tree.dot", "/tmp/tree.dot", "../x"} {
		assert.Equal(t, fault.ErrNotAPlainFileName, util.EnsurePlainName(name), "name: %q", name)
	}
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(dir)

	assert.NoError(t, util.EnsureDirectory(dir), "directory")

	name := filepath.Join(dir, "file")
	require.NoError(t, ioutil.WriteFile(name, []byte("x"), 0600), "write")
	assert.Equal(t, fault.ErrNotADirectory, util.EnsureDirectory(name), "plain file")

	assert.Error(t, util.EnsureDirectory(filepath.Join(dir, "missing")), "missing")
}
