// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised = ExistsError("already initialised")
	ErrEmptyPayload       = InvalidError("empty payload")
	ErrIndexOutOfBounds   = InvalidError("index out of bounds")
	ErrInvalidAddress     = InvalidError("invalid address")
	ErrInvalidCount       = InvalidError("invalid count")
	ErrMalformedArguments = InvalidError("malformed arguments")
	ErrNonexistentToken   = NotFoundError("nonexistent token")
	ErrNotInitialised     = ProcessError("not initialised")
	ErrNotOwner           = PermissionError("caller is not the token owner")
	ErrTransactionInUse   = ProcessError("transaction already in use")
	ErrTransactionNotOpen = ProcessError("transaction not open")
	ErrUnknownFunction    = InvalidError("unknown function")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
