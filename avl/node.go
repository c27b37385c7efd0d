// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	value  int   // ordering value, unique within a tree
	height int   // height of this sub-tree, 1 for a leaf
}

// create a new leaf node
func newNode(value int) *Node {
	return &Node{
		value:  value,
		height: 1,
	}
}

// Value - read the value from a node
func (p *Node) Value() int {
	return p.value
}

// Left - the left child of a node, or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right child of a node, or nil
func (p *Node) Right() *Node {
	return p.right
}

// Height - the cached height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
