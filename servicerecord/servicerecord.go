// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package servicerecord - append only service history per token
//
// Records of a token occupy indexes 0 .. count-1 with no gaps; the
// stored count is authoritative for every bounds check.  There is no
// update or delete.
package servicerecord

import (
	"github.com/devahan/passportd/access"
	"github.com/devahan/passportd/event"
	"github.com/devahan/passportd/fault"
	"github.com/devahan/passportd/keys"
	"github.com/devahan/passportd/passport"
	"github.com/devahan/passportd/storage"
)

//go:generate mockgen -destination=mocks/reader.go -package=mocks github.com/devahan/passportd/passport Reader

// Log - service records over a key/value store
type Log struct {
	store  storage.Store
	tokens passport.Reader
	events event.Recorder
}

// New - create a log; token ownership is read only through tokens
func New(store storage.Store, tokens passport.Reader, events event.Recorder) *Log {
	return &Log{
		store:  store,
		tokens: tokens,
		events: events,
	}
}

// Add - append a payload on behalf of caller, returns the new index
func (l *Log) Add(caller string, tokenId uint64, payload string) (uint64, error) {
	if !l.tokens.Exists(tokenId) {
		return 0, fault.ErrNonexistentToken
	}
	if err := access.RequireOwner(l.tokens, tokenId, caller); nil != err {
		return 0, err
	}
	if 0 == len(payload) {
		return 0, fault.ErrEmptyPayload
	}

	index, _ := l.store.GetN(keys.RecordCount(tokenId))

	l.store.Put(keys.Record(tokenId, index), []byte(payload))
	l.store.PutN(keys.RecordCount(tokenId), index+1)

	l.events.Emit(event.ServiceRecordAdded, event.Uint64("tokenId", tokenId), event.Uint64("index", index))

	return index, nil
}

// Count - number of records of a token, zero if none were added
func (l *Log) Count(tokenId uint64) (uint64, error) {
	if !l.tokens.Exists(tokenId) {
		return 0, fault.ErrNonexistentToken
	}
	n, _ := l.store.GetN(keys.RecordCount(tokenId))
	return n, nil
}

// At - payload at index
func (l *Log) At(tokenId uint64, index uint64) (string, error) {
	count, err := l.Count(tokenId)
	if nil != err {
		return "", err
	}
	if index >= count {
		return "", fault.ErrIndexOutOfBounds
	}

	payload := l.store.Get(keys.Record(tokenId, index))
	if nil == payload {
		// count says the record exists
		return "", fault.ErrInvalidCount
	}
	return string(payload), nil
}

// List - all payloads of a token in index order
func (l *Log) List(tokenId uint64) ([]string, error) {
	count, err := l.Count(tokenId)
	if nil != err {
		return nil, err
	}

	payloads := make([]string, 0, count)
	for index := uint64(0); index < count; index += 1 {
		payload, err := l.At(tokenId, index)
		if nil != err {
			return nil, err
		}
		payloads = append(payloads, payload)
	}
	return payloads, nil
}
