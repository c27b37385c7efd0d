// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Min - the lowest value, false if the tree is empty
func (tree *Tree) Min() (int, bool) {
	if nil == tree.root {
		return 0, false
	}
	return minNode(tree.root).value, true
}

// Max - the highest value, false if the tree is empty
func (tree *Tree) Max() (int, bool) {
	if nil == tree.root {
		return 0, false
	}
	return maxNode(tree.root).value, true
}
