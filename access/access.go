// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - owner gating of mutations
//
// This is the only place a caller is compared against a token owner.
// The caller must come from the host call context, never from the
// decoded argument buffer.
package access

import (
	"github.com/devahan/passportd/fault"
)

// OwnerReader - source of the stored owner of a token
type OwnerReader interface {
	OwnerOf(uint64) (string, error)
}

// RequireOwner - fail unless caller is the current owner of tokenId
//
// a missing token is reported as fault.ErrNonexistentToken
func RequireOwner(tokens OwnerReader, tokenId uint64, caller string) error {
	owner, err := tokens.OwnerOf(tokenId)
	if nil != err {
		return err
	}
	if 0 == len(caller) || caller != owner {
		return fault.ErrNotOwner
	}
	return nil
}
