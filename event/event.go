// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - audit lines for external indexers
package event

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// event names
const (
	Minted             = "Minted"
	ServiceRecordAdded = "ServiceRecordAdded"
)

// Field - one key=value pair of an event
type Field struct {
	Key   string
	Value string
}

// Event - a named list of fields, rendered in order
type Event struct {
	Name   string
	Fields []Field
}

// Uint64 - a decimal field
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: strconv.FormatUint(value, 10)}
}

// String - a text field
func String(key string, value string) Field {
	return Field{Key: key, Value: value}
}

// Line - the human readable form: Name key=value key=value
//
// a value that is empty or contains space, '=', '"' or a non printing
// character is written as a Go quoted string
func (e Event) Line() string {
	var b strings.Builder
	b.WriteString(e.Name)
	for _, f := range e.Fields {
		b.WriteByte(' ')
		b.WriteString(f.Key)
		b.WriteByte('=')
		if needsQuote(f.Value) {
			b.WriteString(strconv.Quote(f.Value))
		} else {
			b.WriteString(f.Value)
		}
	}
	return b.String()
}

func needsQuote(s string) bool {
	if 0 == len(s) || !utf8.ValidString(s) {
		return true
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || '=' == r || '"' == r || !unicode.IsPrint(r)
	}) >= 0
}
