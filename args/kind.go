// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package args

// Kind - type of a single positional argument
type Kind int

// the supported argument kinds
const (
	Uint64 Kind = iota
	String Kind = iota
)

const (
	uint64Size = 8
	lengthSize = 4
)

// String - name of the kind for messages
func (k Kind) String() string {
	switch k {
	case Uint64:
		return "u64"
	case String:
		return "string"
	default:
		return "unknown"
	}
}
