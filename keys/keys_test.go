// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keys_test

import (
	"testing"

	"github.com/devahan/passportd/keys"
)

func TestLayout(t *testing.T) {
	items := []struct {
		key      []byte
		expected string
	}{
		{keys.TokenCounter(), "tokenCounter"},
		{keys.Name(), "name"},
		{keys.Symbol(), "symbol"},
		{keys.Owner(0), "owner:0"},
		{keys.URI(17), "uri:17"},
		{keys.RecordCount(18446744073709551615), "recordCount:18446744073709551615"},
		{keys.Record(1, 23), "record:1_23"},
		{keys.Record(12, 3), "record:12_3"},
	}

	for i, item := range items {
		if string(item.key) != item.expected {
			t.Errorf("%d: key: %q  expected: %q", i, item.key, item.expected)
		}
	}
}

// no two distinct inputs may share a key, across all prefixes
func TestInjective(t *testing.T) {
	seen := make(map[string]string)

	add := func(key []byte, from string) {
		if previous, ok := seen[string(key)]; ok {
			t.Fatalf("key: %q from: %s collides with: %s", key, from, previous)
		}
		seen[string(key)] = from
	}

	add(keys.TokenCounter(), "counter")
	add(keys.Name(), "name")
	add(keys.Symbol(), "symbol")

	for id := uint64(0); id < 130; id += 1 {
		add(keys.Owner(id), "owner")
		add(keys.URI(id), "uri")
		add(keys.RecordCount(id), "count")
		for index := uint64(0); index < 130; index += 1 {
			add(keys.Record(id, index), "record")
		}
	}
}
