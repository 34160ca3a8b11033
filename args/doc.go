// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package args - binary argument codec
//
// A call carries all of its parameters in one opaque buffer.  Values
// are concatenated in declaration order:
//
//   uint64 = 8 bytes little endian
//   string = uint32 little endian byte length ++ UTF-8 bytes
//
// Results returned from a call use the same encoding, so a caller
// decodes them with the same Unpacker.
package args
