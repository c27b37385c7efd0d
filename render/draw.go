// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"strconv"

	"github.com/bitmark-inc/avltree/avl"
)

//go:generate mockgen -destination=mocks/graph.go -package=mocks github.com/bitmark-inc/avltree/render Graph

// Graph - receives the shape of a tree
type Graph interface {
	AddNode(id string, label string)
	AddEdge(from string, to string)
}

// Draw - send every node of the tree to g in pre-order
//
// ids are "n0", "n1", … in the order the nodes are visited, so each
// node has its own id even if values were to repeat
func Draw(tree *avl.Tree, g Graph) {
	root := tree.Root()
	if nil == root {
		return
	}
	n := 0
	draw(root, g, &n)
}

// a child's id is known before descending, it is the next number
func draw(p *avl.Node, g Graph, n *int) {
	id := "n" + strconv.Itoa(*n)
	*n += 1

	g.AddNode(id, strconv.Itoa(p.Value()))
	for _, child := range []*avl.Node{p.Left(), p.Right()} {
		if nil != child {
			childID := "n" + strconv.Itoa(*n)
			g.AddEdge(id, childID)
			draw(child, g, n)
		}
	}
}

// Levels - the values at each depth, root first and each row from
// left to right
func Levels(tree *avl.Tree) [][]int {
	root := tree.Root()
	if nil == root {
		return [][]int{}
	}

	levels := make([][]int, 0, tree.Height())
	for depth := 0; depth < tree.Height(); depth += 1 {
		nodes := root.GetChildrenByDepth(uint(depth))
		row := make([]int, len(nodes))
		for i, p := range nodes {
			row[i] = p.Value()
		}
		levels = append(levels, row)
	}
	return levels
}
