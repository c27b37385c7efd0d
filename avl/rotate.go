// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single LL rotation
//
//	     p            p1
//	    / \          /  \
//	   p1  c   →    a    p
//	  /  \              / \
//	 a    b            b   c
//
// returns the new sub-tree root
func rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	// p is now below p1 so must be done first
	updateHeight(p)
	updateHeight(p1)
	return p1
}

// single RR rotation, mirror of rotateRight
func rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	updateHeight(p)
	updateHeight(p1)
	return p1
}

// double LR rotation: left child is right heavy
func leftRightRotate(p *Node) *Node {
	p.left = rotateLeft(p.left)
	return rotateRight(p)
}

// double RL rotation: right child is left heavy
func rightLeftRotate(p *Node) *Node {
	p.right = rotateRight(p.right)
	return rotateLeft(p)
}
