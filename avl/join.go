// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Merge - join two trees into one balanced tree
//
// every value in left must be less than every value in right, this
// is not checked and violating it produces a tree that is not
// ordered
//
// both arguments are emptied, their nodes now belong to the result
func Merge(left *Tree, right *Tree) *Tree {
	var l, r *Node
	count := 0
	if nil != left {
		l = left.root
		count += left.count
		left.root = nil
		left.count = 0
	}
	if nil != right {
		r = right.root
		count += right.count
		right.root = nil
		right.count = 0
	}
	return &Tree{
		root:  merge(l, r),
		count: count,
	}
}

// internal merge: the taller side gives up the node nearest the
// boundary which then becomes the junction for the two sub-trees
func merge(l *Node, r *Node) *Node {
	if nil == l {
		return r
	}
	if nil == r {
		return l
	}

	if height(l) >= height(r) {
		k := maxNode(l)
		l, _ = remove(k.value, l)
		return join(l, k, r)
	}

	k := minNode(r)
	r, _ = remove(k.value, r)
	return join(l, k, r)
}

// join l and r below the detached node k where l < k < r
//
// when the heights differ by more than one the shorter tree is
// hung from the inner spine of the taller one at a point of
// matching height and each node on the way back up is rebalanced
func join(l *Node, k *Node, r *Node) *Node {
	switch {
	case height(l) > height(r)+1:
		l.right = join(l.right, k, r)
		updateHeight(l)
		return balance(l)

	case height(r) > height(l)+1:
		r.left = join(l, k, r.left)
		updateHeight(r)
		return balance(r)
	}

	k.left = l
	k.right = r
	updateHeight(k)
	return balance(k)
}
