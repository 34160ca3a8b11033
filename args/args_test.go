// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package args_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devahan/passportd/args"
	"github.com/devahan/passportd/fault"
)

var addressAndURI = []args.Kind{args.String, args.String}
var tokenAndPayload = []args.Kind{args.Uint64, args.String}

func TestPackLayout(t *testing.T) {
	packed, err := args.Pack(tokenAndPayload, uint64(0x0102), "ab")
	assert.Nil(t, err, "pack error")

	expected := []byte{
		0x02, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // token id
		0x02, 0x00, 0x00, 0x00, // string length
		'a', 'b',
	}
	if !bytes.Equal(expected, packed) {
		t.Errorf("packed: %x  expected: %x", packed, expected)
	}
}

func TestRoundTrip(t *testing.T) {
	items := []struct {
		kinds  []args.Kind
		values []interface{}
	}{
		{addressAndURI, []interface{}{"addr1", "ipfs://a"}},
		{addressAndURI, []interface{}{"addr2", ""}},
		{addressAndURI, []interface{}{"ünïcødé", "ipfs://ß"}},
		{tokenAndPayload, []interface{}{uint64(0), "oil change"}},
		{tokenAndPayload, []interface{}{^uint64(0), "{\"km\":120000}"}},
		{[]args.Kind{args.Uint64, args.Uint64}, []interface{}{uint64(12), uint64(3)}},
		{[]args.Kind{}, []interface{}{}},
	}

	for i, item := range items {
		packed, err := args.Pack(item.kinds, item.values...)
		if nil != err {
			t.Fatalf("%d: pack error: %s", i, err)
		}
		values, err := args.Unpack(packed, item.kinds...)
		if nil != err {
			t.Fatalf("%d: unpack error: %s", i, err)
		}
		assert.Equal(t, item.values, values, "%d: round trip", i)
	}
}

func TestTruncated(t *testing.T) {
	packed, err := args.Pack(tokenAndPayload, uint64(7), "brake pads")
	assert.Nil(t, err, "pack error")

	// every proper prefix must fail rather than return defaults
	for l := 0; l < len(packed); l += 1 {
		_, err := args.Unpack(packed[:l], tokenAndPayload...)
		if !errors.Is(err, fault.ErrMalformedArguments) {
			t.Errorf("length: %d  error: %v  expected: %s", l, err, fault.ErrMalformedArguments)
		}
	}
}

func TestMissingArgumentPosition(t *testing.T) {
	packed, err := args.Pack([]args.Kind{args.Uint64}, uint64(1))
	assert.Nil(t, err, "pack error")

	_, err = args.Unpack(packed, args.Uint64, args.Uint64)
	var missing *args.MissingArgument
	if !errors.As(err, &missing) {
		t.Fatalf("error: %v is not a missing argument", err)
	}
	assert.Equal(t, 1, missing.Position, "wrong position")
	assert.Equal(t, args.Uint64, missing.Kind, "wrong kind")
}

func TestLengthPrefixTooLong(t *testing.T) {
	buffer := []byte{0x05, 0x00, 0x00, 0x00, 'a', 'b'}
	_, err := args.Unpack(buffer, args.String)
	assert.True(t, errors.Is(err, fault.ErrMalformedArguments), "length beyond buffer accepted")
}

func TestInvalidUTF8(t *testing.T) {
	buffer := []byte{0x02, 0x00, 0x00, 0x00, 0xff, 0xfe}
	_, err := args.Unpack(buffer, args.String)
	assert.True(t, errors.Is(err, fault.ErrMalformedArguments), "invalid UTF-8 accepted")
}

func TestPackInvalidUTF8(t *testing.T) {
	packed, err := args.Pack(addressAndURI, "addr1", "\xff")
	assert.Nil(t, packed, "invalid UTF-8 packed")
	assert.True(t, errors.Is(err, fault.ErrMalformedArguments), "invalid UTF-8 accepted: %v", err)

	var missing *args.MissingArgument
	if assert.True(t, errors.As(err, &missing), "not a positional error: %v", err) {
		assert.Equal(t, 1, missing.Position, "wrong position")
		assert.Equal(t, args.String, missing.Kind, "wrong kind")
	}

	_, err = args.ParseText(tokenAndPayload, []string{"0", "oil\xc3"})
	assert.True(t, errors.Is(err, fault.ErrMalformedArguments), "invalid UTF-8 text accepted: %v", err)
}

func TestTrailingBytesIgnored(t *testing.T) {
	packed, err := args.Pack([]args.Kind{args.Uint64}, uint64(9))
	assert.Nil(t, err, "pack error")
	packed = append(packed, 0xaa, 0xbb)

	u := args.NewUnpacker(packed)
	n, err := u.ReadUint64()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, uint64(9), n, "value")
	assert.Equal(t, 2, u.Remaining(), "remaining")
}

func TestPackWrongType(t *testing.T) {
	_, err := args.Pack(tokenAndPayload, "zero", "payload")
	assert.True(t, errors.Is(err, fault.ErrMalformedArguments), "wrong type accepted")

	_, err = args.Pack(tokenAndPayload, uint64(0))
	assert.True(t, errors.Is(err, fault.ErrMalformedArguments), "short value list accepted")
}

func TestParseText(t *testing.T) {
	packed, err := args.ParseText(tokenAndPayload, []string{"42", "tyre rotation"})
	assert.Nil(t, err, "parse error")

	values, err := args.Unpack(packed, tokenAndPayload...)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, []interface{}{uint64(42), "tyre rotation"}, values, "values")

	_, err = args.ParseText(tokenAndPayload, []string{"-1", "x"})
	assert.True(t, errors.Is(err, fault.ErrMalformedArguments), "negative id accepted")

	_, err = args.ParseText(tokenAndPayload, []string{"1"})
	assert.True(t, errors.Is(err, fault.ErrMalformedArguments), "missing text accepted")
}
