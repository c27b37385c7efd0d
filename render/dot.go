// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/avl"
)

type dotNode struct {
	id    string
	label string
}

type dotEdge struct {
	from string
	to   string
}

// DOT - a Graph that writes Graphviz text
type DOT struct {
	name  string
	nodes []dotNode
	edges []dotEdge
}

// NewDOT - empty digraph with the given name
func NewDOT(name string) *DOT {
	return &DOT{
		name:  name,
		nodes: []dotNode{},
		edges: []dotEdge{},
	}
}

// AddNode - part of Graph
func (d *DOT) AddNode(id string, label string) {
	d.nodes = append(d.nodes, dotNode{id: id, label: label})
}

// AddEdge - part of Graph
func (d *DOT) AddEdge(from string, to string) {
	d.edges = append(d.edges, dotEdge{from: from, to: to})
}

// WriteTo - write the digraph, nodes first then edges
func (d *DOT) WriteTo(w io.Writer) (int64, error) {
	buffer := &bytes.Buffer{}

	fmt.Fprintf(buffer, "digraph %q {\n", d.name)
	for _, node := range d.nodes {
		fmt.Fprintf(buffer, "\t%s [label=%q];\n", node.id, node.label)
	}
	for _, edge := range d.edges {
		fmt.Fprintf(buffer, "\t%s -> %s;\n", edge.from, edge.to)
	}
	buffer.WriteString("}\n")

	n, err := w.Write(buffer.Bytes())
	return int64(n), err
}

// WriteDOT - draw a tree straight to a writer
func WriteDOT(tree *avl.Tree, name string, w io.Writer) error {
	d := NewDOT(name)
	Draw(tree, d)
	_, err := d.WriteTo(w)
	return err
}
