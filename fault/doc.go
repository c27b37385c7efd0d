// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Also holds the last-chance panic routines, which log to the
// "PANIC" logger channel once Initialise has been called and fall
// back to standard output before that.
package fault
