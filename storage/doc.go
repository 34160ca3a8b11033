// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the flat key/value store behind the ledger
//
// A single LevelDB database holds every key; the key namespace is
// defined by package keys.  Writes are only possible inside a
// transaction: Begin opens a batch, Put records into the batch and a
// cache so later reads in the same call see them, Commit writes the
// batch atomically and Abort discards it.
//
// Notes:
// 1. counts are stored as big endian uint64 (8 bytes)
// 2. strings are stored verbatim
// 3. the key 0x00 ++ "VERSION" holds the layout version (big endian uint32)
package storage
