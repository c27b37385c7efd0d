// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new value into the tree
//
// only positive values are accepted, anything else is rejected
// before the tree is touched
//
// returns true if a node was added, false if the value was already
// present
func (tree *Tree) Insert(value int) (bool, error) {
	if value <= 0 {
		return false, fault.ErrInvalidValue
	}
	added := false
	tree.root, added = insert(value, tree.root)
	if added {
		tree.count += 1
	}
	return added, nil
}

// internal routine for insert
// returns the possibly updated sub-tree root
func insert(value int, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(value), true
	}

	added := false
	switch {
	case value < p.value:
		p.left, added = insert(value, p.left)
	case value > p.value:
		p.right, added = insert(value, p.right)
	default:
		return p, false // duplicate: nothing changes
	}

	updateHeight(p)
	return balance(p), added
}
