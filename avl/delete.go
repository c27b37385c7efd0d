// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific value from the tree
//
// returns true if the value was present
func (tree *Tree) Delete(value int) bool {
	removed := false
	tree.root, removed = remove(value, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
// returns the possibly updated sub-tree root
func remove(value int, p *Node) (*Node, bool) {
	if nil == p { // value not in tree
		return nil, false
	}

	removed := false
	switch {
	case value < p.value:
		p.left, removed = remove(value, p.left)
	case value > p.value:
		p.right, removed = remove(value, p.right)
	default: // found: delete p
		if nil == p.left {
			q := p.right
			p.right = nil // fully detach
			return q, true
		}
		if nil == p.right {
			q := p.left
			p.left = nil
			return q, true
		}

		// two children: take over the successor's value and
		// remove the successor instead
		successor := minNode(p.right)
		p.value = successor.value
		p.right, removed = remove(successor.value, p.right)
	}

	updateHeight(p)
	return balance(p), removed
}
