// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding a set of unique positive
// integers
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree and there are no parent
// pointers.  Every routine that restructures a sub-tree returns the
// new root of that sub-tree and the caller stores it back into its own
// child link, so rotations never need to look upwards.
//
// Inserting a value that is already present leaves the tree unchanged,
// the tree is a set rather than a multiset.
//
// Merge joins two trees whose value ranges do not overlap, every value
// of the left tree must be less than every value of the right tree.
// This is not checked, a caller normally obtains the two halves from a
// previous Split.
package avl
