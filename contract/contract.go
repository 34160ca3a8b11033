// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/devahan/passportd/args"
	"github.com/devahan/passportd/event"
	"github.com/devahan/passportd/fault"
	"github.com/devahan/passportd/metrics"
	"github.com/devahan/passportd/passport"
	"github.com/devahan/passportd/servicerecord"
	"github.com/devahan/passportd/storage"
)

// Context - host supplied facts about the current call
type Context struct {
	// address the host attributes to the invoker, used for access control
	Caller string
}

// Database - transactional key/value store
type Database interface {
	storage.Store
	storage.Transaction
}

// Contract - the ledger state machine
type Contract struct {
	sync.Mutex
	log      *logger.L
	db       Database
	emitter  *event.Emitter
	metrics  *metrics.Metrics
	registry *passport.Registry
	records  *servicerecord.Log
}

// New - create a contract over a database
//
// m may be nil to disable metrics
func New(db Database, emitter *event.Emitter, m *metrics.Metrics) *Contract {
	registry := passport.New(db, emitter)
	return &Contract{
		log:      logger.New("contract"),
		db:       db,
		emitter:  emitter,
		metrics:  m,
		registry: registry,
		records:  servicerecord.New(db, registry, emitter),
	}
}

// Initialise - first time setup of counter, name and symbol
func (c *Contract) Initialise(name string, symbol string) error {
	c.Lock()
	defer c.Unlock()

	if err := c.db.Begin(); nil != err {
		return err
	}
	c.registry.Initialise(name, symbol)
	if err := c.db.Commit(); nil != err {
		c.log.Errorf("initialise commit error: %s", err)
		return err
	}
	c.log.Infof("initialised name: %q  symbol: %q  supply: %d", c.registry.Name(), c.registry.Symbol(), c.registry.TotalSupply())
	return nil
}

// Call - execute one function with packed arguments
func (c *Contract) Call(ctx Context, function string, arguments []byte) ([]byte, error) {
	start := time.Now()

	result, err := c.call(ctx, function, arguments)

	label := function
	if _, ok := functions[function]; !ok {
		label = "unknown"
	}
	c.metrics.ObserveCall(label, err, time.Since(start))

	return result, err
}

func (c *Contract) call(ctx Context, function string, arguments []byte) (result []byte, err error) {
	h, ok := functions[function]
	if !ok {
		c.log.Debugf("unknown function: %q", function)
		return nil, fault.ErrUnknownFunction
	}

	values, err := args.Unpack(arguments, h.arguments...)
	if nil != err {
		c.log.Debugf("%s: arguments: %x  error: %s", function, arguments, err)
		return nil, err
	}

	c.Lock()
	defer c.Unlock()

	if err := c.db.Begin(); nil != err {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			c.db.Abort()
			c.emitter.Discard()
		}
	}()

	packed, err := h.run(c, ctx, values)
	if nil != err {
		c.log.Debugf("%s: caller: %q  error: %s", function, ctx.Caller, err)
		return nil, err
	}

	if h.mutates {
		if err := c.db.Commit(); nil != err {
			c.log.Errorf("%s: commit error: %s", function, err)
			return nil, err
		}
	} else {
		c.db.Abort()
	}
	committed = true

	delivered := c.emitter.Flush()
	c.metrics.AddEvents(len(delivered))

	return packed, nil
}

// Token - the complete state of one token
type Token struct {
	Id       uint64
	Owner    string
	URI      string
	Payloads []string
}

// Tokens - committed state of every token in id order
//
// start and count select a window of ids, count <= 0 means all
func (c *Contract) Tokens(start uint64, count int) ([]Token, error) {
	c.Lock()
	defer c.Unlock()

	supply := c.registry.TotalSupply()
	tokens := make([]Token, 0)
	for id := start; id < supply; id += 1 {
		if count > 0 && len(tokens) >= count {
			break
		}
		owner, err := c.registry.OwnerOf(id)
		if nil != err {
			return nil, err
		}
		uri, err := c.registry.TokenURI(id)
		if nil != err {
			return nil, err
		}
		payloads, err := c.records.List(id)
		if nil != err {
			return nil, err
		}
		tokens = append(tokens, Token{
			Id:       id,
			Owner:    owner,
			URI:      uri,
			Payloads: payloads,
		})
	}
	return tokens, nil
}
