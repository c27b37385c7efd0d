// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hand build a node with correct height
func makeNode(value int, left *Node, right *Node) *Node {
	p := &Node{
		value: value,
		left:  left,
		right: right,
	}
	updateHeight(p)
	return p
}

func leaf(value int) *Node {
	return makeNode(value, nil, nil)
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 0, height(nil), "empty height")

	p := leaf(10)
	assert.Equal(t, 1, height(p), "leaf height")

	p.left = leaf(5)
	p.right = leaf(15)
	assert.Equal(t, 1, height(p), "stale cached height should be returned")
	updateHeight(p)
	assert.Equal(t, 2, height(p), "updated height")
}

func TestBalanceFactor(t *testing.T) {
	assert.Equal(t, 0, balanceFactor(nil), "empty")

	p := makeNode(10, leaf(5), leaf(15))
	assert.Equal(t, 0, balanceFactor(p), "even")

	p.left.left = leaf(2)
	updateHeight(p.left)
	updateHeight(p)
	assert.Equal(t, 1, balanceFactor(p), "left heavy")

	q := makeNode(10, nil, makeNode(15, nil, leaf(20)))
	assert.Equal(t, -2, balanceFactor(q), "right heavy")
}

func TestMinMaxNode(t *testing.T) {
	p := makeNode(10, makeNode(5, leaf(2), leaf(7)), makeNode(15, nil, leaf(20)))
	assert.Equal(t, 2, minNode(p).value, "min")
	assert.Equal(t, 20, maxNode(p).value, "max")
	assert.Equal(t, 7, maxNode(p.left).value, "max of left")

	assert.Panics(t, func() { minNode(nil) }, "min of nil")
	assert.Panics(t, func() { maxNode(nil) }, "max of nil")
}

func TestRotateRight(t *testing.T) {
	p := makeNode(10, makeNode(5, leaf(2), nil), nil)

	p = rotateRight(p)
	assert.Equal(t, 5, p.value, "new root")
	assert.Equal(t, 10, p.right.value, "right")
	assert.Equal(t, 2, p.left.value, "left")
	assert.Equal(t, 2, p.height, "root height")
	assert.Equal(t, 1, p.right.height, "demoted height")
}

func TestRotateLeft(t *testing.T) {
	p := makeNode(10, nil, makeNode(15, nil, leaf(20)))

	p = rotateLeft(p)
	assert.Equal(t, 15, p.value, "new root")
	assert.Equal(t, 10, p.left.value, "left")
	assert.Equal(t, 20, p.right.value, "right")
	assert.Equal(t, 2, p.height, "root height")
}

func TestRotateMovesInnerSubtree(t *testing.T) {
	//     10            5
	//    /  \          / \
	//   5    12  →    2   10
	//  / \               /  \
	// 2   7             7    12
	p := makeNode(10, makeNode(5, leaf(2), leaf(7)), leaf(12))

	p = rotateRight(p)
	assert.Equal(t, 5, p.value, "new root")
	assert.Equal(t, 7, p.right.left.value, "moved sub-tree")
	assert.Equal(t, 12, p.right.right.value, "kept sub-tree")
	assert.Equal(t, 3, p.height, "root height")
	assert.Equal(t, 2, p.right.height, "demoted height")
}

func TestDoubleRotations(t *testing.T) {
	lr := makeNode(10, makeNode(5, nil, leaf(7)), nil)
	lr = leftRightRotate(lr)
	assert.Equal(t, 7, lr.value, "left-right root")
	assert.Equal(t, 5, lr.left.value, "left-right left")
	assert.Equal(t, 10, lr.right.value, "left-right right")
	assert.Equal(t, 2, lr.height, "left-right height")

	rl := makeNode(10, nil, makeNode(15, leaf(12), nil))
	rl = rightLeftRotate(rl)
	assert.Equal(t, 12, rl.value, "right-left root")
	assert.Equal(t, 10, rl.left.value, "right-left left")
	assert.Equal(t, 15, rl.right.value, "right-left right")
	assert.Equal(t, 2, rl.height, "right-left height")
}

func TestBalanceDispatch(t *testing.T) {
	balanced := makeNode(10, leaf(5), nil)
	assert.Same(t, balanced, balance(balanced), "balanced node must not move")

	ll := balance(makeNode(10, makeNode(5, leaf(2), nil), nil))
	assert.Equal(t, 5, ll.value, "left-left case")

	lr := balance(makeNode(10, makeNode(5, nil, leaf(7)), nil))
	assert.Equal(t, 7, lr.value, "left-right case")

	rr := balance(makeNode(10, nil, makeNode(15, nil, leaf(20))))
	assert.Equal(t, 15, rr.value, "right-right case")

	rl := balance(makeNode(10, nil, makeNode(15, leaf(12), nil)))
	assert.Equal(t, 12, rl.value, "right-left case")

	// a right child with both sides equal, as left behind by a
	// delete, takes the single rotation
	even := balance(makeNode(10, nil, makeNode(15, leaf(12), leaf(20))))
	assert.Equal(t, 15, even.value, "even child case")
	assert.Equal(t, 12, even.left.right.value, "even child inner")
	assert.True(t, IsBalanced(even), "even child result")
}

func TestBalanceOutOfRange(t *testing.T) {
	deep := makeNode(10, makeNode(5, makeNode(3, leaf(2), nil), nil), nil)
	assert.Equal(t, 3, balanceFactor(deep), "setup")
	assert.Panics(t, func() { balance(deep) }, "imbalance of three")
}

func TestMergeNodes(t *testing.T) {
	l := makeNode(5, leaf(2), leaf(7))
	r := makeNode(15, leaf(12), leaf(20))

	// equal heights: the left side gives up its maximum
	p := merge(l, r)
	assert.Equal(t, 7, p.value, "junction")
	assert.Equal(t, 5, p.left.value, "left")
	assert.Equal(t, 15, p.right.value, "right")
	assert.Nil(t, p.left.right, "junction still linked below left")
	assert.Equal(t, 3, p.height, "height")

	tree := &Tree{root: p, count: 6}
	assert.True(t, tree.IsValid(), "merged tree")
	assert.Equal(t, []int{2, 5, 7, 12, 15, 20}, tree.Inorder(), "values")
}

func TestMergeNodesRightTaller(t *testing.T) {
	l := leaf(2)
	r := makeNode(15, makeNode(12, leaf(11), nil), leaf(20))

	p := merge(l, r)
	tree := &Tree{root: p, count: 5}
	assert.True(t, tree.IsValid(), "merged tree")
	assert.Equal(t, []int{2, 11, 12, 15, 20}, tree.Inorder(), "values")

	assert.Same(t, r, merge(nil, r), "nil left")
	assert.Same(t, l, merge(l, nil), "nil right")
	assert.Nil(t, merge(nil, nil), "both nil")
}

func TestValidateAVL(t *testing.T) {
	p := makeNode(10, leaf(5), leaf(15))
	assert.True(t, IsBalanced(p), "balanced")

	p.left.left = leaf(2)
	p.left.left.left = leaf(1)
	updateHeight(p.left.left)
	updateHeight(p.left)
	updateHeight(p)
	assert.False(t, IsBalanced(p), "left chain")
}

func TestBalancedButUnordered(t *testing.T) {
	p := makeNode(10, leaf(50), leaf(1))
	tree := &Tree{root: p, count: 3}

	assert.True(t, tree.IsBalanced(), "balance only check")
	assert.False(t, tree.CheckOrder(), "order check")
	assert.False(t, tree.IsValid(), "full check")
}

func TestStaleHeightDetected(t *testing.T) {
	p := makeNode(10, leaf(5), leaf(15))
	p.left.left = leaf(2) // heights not updated
	tree := &Tree{root: p, count: 4}

	assert.False(t, tree.CheckHeights(), "stale heights")
	assert.False(t, tree.IsValid(), "full check")
}

func TestDeleteDetachesNode(t *testing.T) {
	tree := &Tree{}
	for _, v := range []int{10, 5, 15, 20} {
		_, err := tree.Insert(v)
		require.NoError(t, err, "insert: %d", v)
	}
	p := tree.Find(15)
	require.NotNil(t, p, "find")

	assert.True(t, tree.Delete(15), "delete")
	assert.Nil(t, p.left, "left link")
	assert.Nil(t, p.right, "right link")
	assert.Equal(t, 20, tree.root.right.value, "promoted child")
}

func TestPrint(t *testing.T) {
	tree := Build([]int{1, 2, 3})

	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer)
	assert.Equal(t, 2, depth, "depth")

	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	require.Len(t, lines, 3, "line count")
	assert.Equal(t, "       /------+ 3 h:1 +0", lines[0], "right")
	assert.Equal(t, "|------+ 2 h:2 +0", lines[1], "root")
	assert.Equal(t, "       \\------+ 1 h:1 +0", lines[2], "left")
}
