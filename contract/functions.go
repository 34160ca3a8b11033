// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/devahan/passportd/args"
)

// function names
const (
	Mint                  = "mint"
	AddServiceRecord      = "addServiceRecord"
	OwnerOf               = "ownerOf"
	TokenURI              = "tokenURI"
	GetServiceRecordCount = "getServiceRecordCount"
	GetServiceRecordAt    = "getServiceRecordAt"
	Name                  = "name"
	Symbol                = "symbol"
	TotalSupply           = "totalSupply"
)

type handler struct {
	arguments []args.Kind
	result    []args.Kind
	mutates   bool
	run       func(c *Contract, ctx Context, values []interface{}) (args.Packed, error)
}

var functions = map[string]handler{
	Mint: {
		arguments: []args.Kind{args.String, args.String},
		result:    []args.Kind{args.Uint64},
		mutates:   true,
		run: func(c *Contract, ctx Context, values []interface{}) (args.Packed, error) {
			tokenId, err := c.registry.Mint(values[0].(string), values[1].(string))
			if nil != err {
				return nil, err
			}
			return args.Packed{}.AppendUint64(tokenId), nil
		},
	},
	AddServiceRecord: {
		arguments: []args.Kind{args.Uint64, args.String},
		result:    []args.Kind{},
		mutates:   true,
		run: func(c *Contract, ctx Context, values []interface{}) (args.Packed, error) {
			_, err := c.records.Add(ctx.Caller, values[0].(uint64), values[1].(string))
			return nil, err
		},
	},
	OwnerOf: {
		arguments: []args.Kind{args.Uint64},
		result:    []args.Kind{args.String},
		run: func(c *Contract, ctx Context, values []interface{}) (args.Packed, error) {
			owner, err := c.registry.OwnerOf(values[0].(uint64))
			if nil != err {
				return nil, err
			}
			return args.Packed{}.AppendString(owner), nil
		},
	},
	TokenURI: {
		arguments: []args.Kind{args.Uint64},
		result:    []args.Kind{args.String},
		run: func(c *Contract, ctx Context, values []interface{}) (args.Packed, error) {
			uri, err := c.registry.TokenURI(values[0].(uint64))
			if nil != err {
				return nil, err
			}
			return args.Packed{}.AppendString(uri), nil
		},
	},
	GetServiceRecordCount: {
		arguments: []args.Kind{args.Uint64},
		result:    []args.Kind{args.Uint64},
		run: func(c *Contract, ctx Context, values []interface{}) (args.Packed, error) {
			count, err := c.records.Count(values[0].(uint64))
			if nil != err {
				return nil, err
			}
			return args.Packed{}.AppendUint64(count), nil
		},
	},
	GetServiceRecordAt: {
		arguments: []args.Kind{args.Uint64, args.Uint64},
		result:    []args.Kind{args.String},
		run: func(c *Contract, ctx Context, values []interface{}) (args.Packed, error) {
			payload, err := c.records.At(values[0].(uint64), values[1].(uint64))
			if nil != err {
				return nil, err
			}
			return args.Packed{}.AppendString(payload), nil
		},
	},
	Name: {
		arguments: []args.Kind{},
		result:    []args.Kind{args.String},
		run: func(c *Contract, ctx Context, values []interface{}) (args.Packed, error) {
			return args.Packed{}.AppendString(c.registry.Name()), nil
		},
	},
	Symbol: {
		arguments: []args.Kind{},
		result:    []args.Kind{args.String},
		run: func(c *Contract, ctx Context, values []interface{}) (args.Packed, error) {
			return args.Packed{}.AppendString(c.registry.Symbol()), nil
		},
	},
	TotalSupply: {
		arguments: []args.Kind{},
		result:    []args.Kind{args.Uint64},
		run: func(c *Contract, ctx Context, values []interface{}) (args.Packed, error) {
			return args.Packed{}.AppendUint64(c.registry.TotalSupply()), nil
		},
	},
}

// Signature - argument and result kinds of a function
func Signature(function string) ([]args.Kind, []args.Kind, bool) {
	h, ok := functions[function]
	if !ok {
		return nil, nil, false
	}
	return h.arguments, h.result, true
}

// Mutates - true if the function can change state
func Mutates(function string) bool {
	return functions[function].mutates
}
