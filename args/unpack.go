// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package args

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/devahan/passportd/fault"
)

// MissingArgument - a positional argument could not be read
type MissingArgument struct {
	Position int
	Kind     Kind
}

func (e *MissingArgument) Error() string {
	return fmt.Sprintf("missing argument[%d] of kind: %s", e.Position, e.Kind)
}

// Unwrap - allows errors.Is(err, fault.ErrMalformedArguments)
func (e *MissingArgument) Unwrap() error {
	return fault.ErrMalformedArguments
}

// Unpacker - sequential reader over a packed buffer
type Unpacker struct {
	buffer   []byte
	offset   int
	position int
}

// NewUnpacker - start reading at the first argument
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
	}
}

// ReadUint64 - read the next argument as a 64 bit value
func (u *Unpacker) ReadUint64() (uint64, error) {
	if len(u.buffer)-u.offset < uint64Size {
		return 0, u.missing(Uint64)
	}
	n := binary.LittleEndian.Uint64(u.buffer[u.offset:])
	u.offset += uint64Size
	u.position += 1
	return n, nil
}

// ReadString - read the next argument as a length prefixed string
func (u *Unpacker) ReadString() (string, error) {
	remaining := len(u.buffer) - u.offset
	if remaining < lengthSize {
		return "", u.missing(String)
	}
	length := uint64(binary.LittleEndian.Uint32(u.buffer[u.offset:]))
	if length > uint64(remaining-lengthSize) {
		return "", u.missing(String)
	}
	start := u.offset + lengthSize
	finish := start + int(length)
	if !utf8.Valid(u.buffer[start:finish]) {
		return "", u.missing(String)
	}

	// copy so the result does not alias the caller's buffer
	s := string(u.buffer[start:finish])
	u.offset = finish
	u.position += 1
	return s, nil
}

// Remaining - count of bytes not yet consumed
func (u *Unpacker) Remaining() int {
	return len(u.buffer) - u.offset
}

func (u *Unpacker) missing(k Kind) error {
	return &MissingArgument{
		Position: u.position,
		Kind:     k,
	}
}

// Unpack - decode a whole buffer against a declared kind sequence
//
// returns uint64 and string values in declaration order; bytes after
// the last declared argument are ignored
func Unpack(buffer []byte, kinds ...Kind) ([]interface{}, error) {
	u := NewUnpacker(buffer)
	values := make([]interface{}, 0, len(kinds))
	for _, k := range kinds {
		switch k {
		case Uint64:
			n, err := u.ReadUint64()
			if nil != err {
				return nil, err
			}
			values = append(values, n)
		case String:
			s, err := u.ReadString()
			if nil != err {
				return nil, err
			}
			values = append(values, s)
		default:
			return nil, u.missing(k)
		}
	}
	return values, nil
}
