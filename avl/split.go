// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Split - partition the values into two new trees, the first holds
// all values <= pivot and the second all values > pivot
//
// the tree itself is not modified, both results are built from new
// nodes
func (tree *Tree) Split(pivot int) (*Tree, *Tree) {
	low := make([]int, 0, tree.count)
	high := make([]int, 0, tree.count)
	partition(tree.root, pivot, &low, &high)
	return fromSorted(low), fromSorted(high)
}

// in-order scan so both lists come out ascending
func partition(p *Node, pivot int, low *[]int, high *[]int) {
	if nil == p {
		return
	}
	partition(p.left, pivot, low, high)
	if p.value <= pivot {
		*low = append(*low, p.value)
	} else {
		*high = append(*high, p.value)
	}
	partition(p.right, pivot, low, high)
}
