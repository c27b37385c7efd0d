// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/slices"
)

// Build - create a minimum height tree from a list of values
//
// the values need not be sorted and duplicates are dropped, the
// input slice is not modified
func Build(values []int) *Tree {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return fromSorted(slices.Compact(sorted))
}

// tree from strictly ascending values
func fromSorted(sorted []int) *Tree {
	return &Tree{
		root:  build(sorted),
		count: len(sorted),
	}
}

// middle element becomes the root, no rotations needed
func build(sorted []int) *Node {
	if 0 == len(sorted) {
		return nil
	}

	mid := len(sorted) / 2
	p := newNode(sorted[mid])
	p.left = build(sorted[:mid])
	p.right = build(sorted[mid+1:])
	updateHeight(p)

	return p
}
