// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package args

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/devahan/passportd/fault"
)

// Packed - an encoded argument or result buffer
type Packed []byte

// AppendUint64 - append a fixed width 64 bit value
func (buffer Packed) AppendUint64(value uint64) Packed {
	var b [uint64Size]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// AppendString - append a length prefixed string
func (buffer Packed) AppendString(s string) Packed {
	var l [lengthSize]byte
	binary.LittleEndian.PutUint32(l[:], uint32(len(s)))
	buffer = append(buffer, l[:]...)
	return append(buffer, s...)
}

// Pack - encode values in order, each value must be of the declared kind
//
// strings must be valid UTF-8 so that every packed buffer unpacks
func Pack(kinds []Kind, values ...interface{}) (Packed, error) {
	if len(kinds) != len(values) {
		return nil, fault.ErrMalformedArguments
	}

	buffer := make(Packed, 0, 64)
	for i, k := range kinds {
		switch k {
		case Uint64:
			v, ok := values[i].(uint64)
			if !ok {
				return nil, fmt.Errorf("argument[%d]: %w: expected %s got %T", i, fault.ErrMalformedArguments, k, values[i])
			}
			buffer = buffer.AppendUint64(v)
		case String:
			v, ok := values[i].(string)
			if !ok {
				return nil, fmt.Errorf("argument[%d]: %w: expected %s got %T", i, fault.ErrMalformedArguments, k, values[i])
			}
			if !utf8.ValidString(v) {
				return nil, &MissingArgument{Position: i, Kind: k}
			}
			buffer = buffer.AppendString(v)
		default:
			return nil, fault.ErrMalformedArguments
		}
	}
	return buffer, nil
}

// ParseText - convert command line text to a packed buffer
//
// u64 values are decimal, strings are taken verbatim
func ParseText(kinds []Kind, text []string) (Packed, error) {
	if len(kinds) != len(text) {
		return nil, fmt.Errorf("%w: expected %d arguments got %d", fault.ErrMalformedArguments, len(kinds), len(text))
	}

	values := make([]interface{}, len(text))
	for i, k := range kinds {
		switch k {
		case Uint64:
			n, err := strconv.ParseUint(text[i], 10, 64)
			if nil != err {
				return nil, &MissingArgument{Position: i, Kind: k}
			}
			values[i] = n
		default:
			values[i] = text[i]
		}
	}
	return Pack(kinds, values...)
}
