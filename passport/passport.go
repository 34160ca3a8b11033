// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package passport - the token registry
//
// Owns the token id counter, the owner and URI of every token and
// the contract name and symbol.  A token exists if and only if its
// owner key is present.
package passport

import (
	"github.com/devahan/passportd/event"
	"github.com/devahan/passportd/fault"
	"github.com/devahan/passportd/keys"
	"github.com/devahan/passportd/storage"
)

// Reader - read only view of the registry used by other components
type Reader interface {
	Exists(uint64) bool
	OwnerOf(uint64) (string, error)
}

// Registry - token registry over a key/value store
type Registry struct {
	store  storage.Store
	events event.Recorder
}

// New - create a registry
func New(store storage.Store, events event.Recorder) *Registry {
	return &Registry{
		store:  store,
		events: events,
	}
}

// Initialise - write the counter, name and symbol if absent
//
// safe to call on every start; existing values are kept
func (r *Registry) Initialise(name string, symbol string) {
	if !r.store.Has(keys.TokenCounter()) {
		r.store.PutN(keys.TokenCounter(), 0)
	}
	if !r.store.Has(keys.Name()) {
		r.store.Put(keys.Name(), []byte(name))
	}
	if !r.store.Has(keys.Symbol()) {
		r.store.Put(keys.Symbol(), []byte(symbol))
	}
}

// Mint - issue the next token id to an owner
func (r *Registry) Mint(to string, uri string) (uint64, error) {
	if 0 == len(to) {
		return 0, fault.ErrInvalidAddress
	}

	// absent counter reads as zero
	tokenId, _ := r.store.GetN(keys.TokenCounter())

	r.store.Put(keys.Owner(tokenId), []byte(to))
	r.store.Put(keys.URI(tokenId), []byte(uri))
	r.store.PutN(keys.TokenCounter(), tokenId+1)

	r.events.Emit(event.Minted, event.Uint64("tokenId", tokenId), event.String("to", to))

	return tokenId, nil
}

// Exists - the single existence predicate for a token
func (r *Registry) Exists(tokenId uint64) bool {
	return r.store.Has(keys.Owner(tokenId))
}

// OwnerOf - current owner of a token
func (r *Registry) OwnerOf(tokenId uint64) (string, error) {
	owner := r.store.Get(keys.Owner(tokenId))
	if nil == owner {
		return "", fault.ErrNonexistentToken
	}
	return string(owner), nil
}

// TokenURI - URI given at mint, empty if none was stored
func (r *Registry) TokenURI(tokenId uint64) (string, error) {
	if !r.Exists(tokenId) {
		return "", fault.ErrNonexistentToken
	}
	return string(r.store.Get(keys.URI(tokenId))), nil
}

// TotalSupply - number of tokens minted so far
func (r *Registry) TotalSupply() uint64 {
	n, _ := r.store.GetN(keys.TokenCounter())
	return n
}

// Name - contract name
func (r *Registry) Name() string {
	return string(r.store.Get(keys.Name()))
}

// Symbol - contract symbol
func (r *Registry) Symbol() string {
	return string(r.store.Get(keys.Symbol()))
}
