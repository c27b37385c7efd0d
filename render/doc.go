// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package render - read-only drawing of an avl tree
//
// Only the node values and child links are used, a tree is never
// modified by rendering.  The Graph interface receives nodes and
// edges, DOT collects them and writes a Graphviz digraph.
package render
