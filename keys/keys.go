// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keys - storage key namespace
//
// Singletons:
//
//   tokenCounter                 - next token id to issue
//                                  data: count
//   name                         - contract name
//   symbol                       - contract symbol
//
// Tokens:
//
//   owner: ⧺ id                  - owner address, presence means the token exists
//   uri: ⧺ id                    - token URI (may be empty)
//
// Service records:
//
//   recordCount: ⧺ id            - number of records appended
//                                  data: count
//   record: ⧺ id ⧺ _ ⧺ index     - record payload
//
// ids and indexes are rendered in decimal; the "_" separator keeps
// (1, 23) and (12, 3) apart and every prefix ends in ":" so no
// prefix is the start of another.
package keys

import (
	"strconv"
)

// key prefixes
const (
	tokenCounter = "tokenCounter"
	name         = "name"
	symbol       = "symbol"

	ownerPrefix       = "owner:"
	uriPrefix         = "uri:"
	recordCountPrefix = "recordCount:"
	recordPrefix      = "record:"

	indexSeparator = '_'
)

// TokenCounter - key of the global token id counter
func TokenCounter() []byte {
	return []byte(tokenCounter)
}

// Name - key of the contract name
func Name() []byte {
	return []byte(name)
}

// Symbol - key of the contract symbol
func Symbol() []byte {
	return []byte(symbol)
}

// Owner - key of a token's owner
func Owner(tokenId uint64) []byte {
	return withId(ownerPrefix, tokenId)
}

// URI - key of a token's URI
func URI(tokenId uint64) []byte {
	return withId(uriPrefix, tokenId)
}

// RecordCount - key of a token's service record count
func RecordCount(tokenId uint64) []byte {
	return withId(recordCountPrefix, tokenId)
}

// Record - key of one service record
func Record(tokenId uint64, index uint64) []byte {
	key := withId(recordPrefix, tokenId)
	key = append(key, indexSeparator)
	return strconv.AppendUint(key, index, 10)
}

func withId(prefix string, tokenId uint64) []byte {
	key := make([]byte, 0, len(prefix)+20)
	key = append(key, prefix...)
	return strconv.AppendUint(key, tokenId, 10)
}
