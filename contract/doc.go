// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - the single entry point of the ledger
//
// A call is (caller, function name, packed arguments).  Calls run one
// at a time; each executes inside a storage transaction that is
// committed only if the call succeeds, and the audit events of a call
// are delivered only after its commit.
//
//   function               arguments               result
//   ---------------------  ----------------------  --------
//   mint                   address, tokenUri       u64
//   addServiceRecord       tokenId, payload        (none)   caller must own tokenId
//   ownerOf                tokenId                 string
//   tokenURI               tokenId                 string
//   getServiceRecordCount  tokenId                 u64
//   getServiceRecordAt     tokenId, index          string
//   name                   -                       string
//   symbol                 -                       string
//   totalSupply            -                       u64
package contract
