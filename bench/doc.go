// Copyright 2025 The matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package bench times matmul strategies and checks them against each other.
//
// Compare runs a session end to end: Prepare validates shapes and allocates
// C, a Runner times the reference strategy, Snapshot copies its result, and
// every further strategy is timed and then checked with Verify. Any failure
// ends the session with an error.
package bench
