// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// IsBalanced - check only the balance property: at every node the
// heights of the two sub-trees differ by at most one
//
// ordering is not examined, see CheckOrder
func IsBalanced(p *Node) bool {
	if nil == p {
		return true
	}
	bf := balanceFactor(p)
	if bf < -1 || bf > 1 {
		return false
	}
	return IsBalanced(p.left) && IsBalanced(p.right)
}

// IsBalanced - balance check of the whole tree
func (tree *Tree) IsBalanced() bool {
	return IsBalanced(tree.root)
}

// CheckOrder - every left sub-tree holds only smaller values and
// every right sub-tree only larger ones
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

// internal: lower and upper are exclusive bounds, nil is unbounded
func checkOrder(p *Node, lower *int, upper *int) bool {
	if nil == p {
		return true
	}
	if nil != lower && p.value <= *lower {
		return false
	}
	if nil != upper && p.value >= *upper {
		return false
	}
	return checkOrder(p.left, lower, &p.value) && checkOrder(p.right, &p.value, upper)
}

// CheckHeights - every cached height matches the actual height
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

func checkHeights(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	hl, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + max(hl, hr)
	return h, h == p.height
}

// IsValid - full consistency check: balance, ordering, cached
// heights and the node count
func (tree *Tree) IsValid() bool {
	return tree.CheckHeights() &&
		tree.IsBalanced() &&
		tree.CheckOrder() &&
		tree.count == tree.CountNodes()
}
