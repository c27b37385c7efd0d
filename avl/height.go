// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// height of a sub-tree, zero for an empty one
// relies on the cached value being kept correct
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height from the children
// must be called after any change to the children of p
func updateHeight(p *Node) {
	p.height = 1 + max(height(p.left), height(p.right))
}

// height(left) - height(right)
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// internal: lowest node in a sub-tree
func minNode(p *Node) *Node {
	if nil == p {
		fault.Panic("avl: minimum of an empty sub-tree")
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func maxNode(p *Node) *Node {
	if nil == p {
		fault.Panic("avl: maximum of an empty sub-tree")
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
