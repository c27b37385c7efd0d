// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// restore the balance of a sub-tree whose children differ in height
// by at most two, the children themselves must already be balanced
// and have correct heights
//
// returns the possibly new sub-tree root
func balance(p *Node) *Node {
	switch bf := balanceFactor(p); bf {
	case -2: // right branch too high
		if +1 == balanceFactor(p.right) {
			return rightLeftRotate(p)
		}
		return rotateLeft(p)

	case +2: // left branch too high
		if -1 == balanceFactor(p.left) {
			return leftRightRotate(p)
		}
		return rotateRight(p)

	case -1, 0, +1:
		return p

	default:
		fault.Panicf("avl: balance factor: %d at value: %d cannot be corrected", bf, p.value)
	}
	return p
}
