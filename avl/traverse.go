// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Inorder - all values in ascending order
//
// each call walks the whole tree again
func (tree *Tree) Inorder() []int {
	result := make([]int, 0, tree.count)
	tree.Walk(func(value int) bool {
		result = append(result, value)
		return true
	})
	return result
}

// Walk - call f for each value in ascending order until f returns
// false
//
// f must not modify the tree
func (tree *Tree) Walk(f func(value int) bool) {
	walk(tree.root, f)
}

// returns false once f has asked to stop
func walk(p *Node, f func(int) bool) bool {
	if nil == p {
		return true
	}
	return walk(p.left, f) && f(p.value) && walk(p.right, f)
}

// LevelOrder - values in breadth first order: the root, then each
// depth from left to right
func (tree *Tree) LevelOrder() []int {
	result := make([]int, 0, tree.count)
	if nil == tree.root {
		return result
	}

	queue := []*Node{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue[0] = nil
		queue = queue[1:]

		result = append(result, p.value)
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return result
}

// CountNodes - count the nodes by walking the tree
//
// unlike Count this does not rely on the cached total
func (tree *Tree) CountNodes() int {
	return countNodes(tree.root)
}

func countNodes(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
