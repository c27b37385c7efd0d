// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - true if the value is in the tree
func (tree *Tree) Search(value int) bool {
	return nil != search(value, tree.root)
}

// Find - the node holding value or nil if not present
func (tree *Tree) Find(value int) *Node {
	return search(value, tree.root)
}

func search(value int, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch {
	case value < tree.value:
		return search(value, tree.left)
	case value > tree.value:
		return search(value, tree.right)
	default:
		return tree
	}
}
