// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
	"github.com/devahan/passportd/fault"
)

// Store - key/value access used by the ledger components
type Store interface {
	Get([]byte) []byte
	GetN([]byte) (uint64, bool)
	Has([]byte) bool
	Put([]byte, []byte)
	PutN([]byte, uint64)
}

// Transaction - the commit/abort half of a database
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
}

// Database - a LevelDB database with one open batch at a time
type Database struct {
	sync.Mutex
	inUse    bool
	readOnly bool
	db       *leveldb.DB
	batch    *leveldb.Batch
	cache    Cache
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Close - release the database
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()
	if nil != d.db {
		d.db.Close()
		d.db = nil
	}
}

// Begin - start collecting writes for one call
func (d *Database) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.ErrTransactionInUse
	}

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = true
	return nil
}

// Commit - write all pending values atomically
func (d *Database) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.ErrTransactionNotOpen
	}

	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
	return err
}

// Abort - discard all pending values
func (d *Database) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// InUse - true while a transaction is open
func (d *Database) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Put - store a key/value bytes pair in the open transaction
func (d *Database) Put(key []byte, value []byte) {
	if !d.InUse() {
		logger.Panicf("storage.Put outside transaction for: %q", key)
	}
	if d.readOnly {
		logger.Panicf("storage.Put on read only database for: %q", key)
	}

	// retain a private copy, the caller may reuse its slices
	v := make([]byte, len(value))
	copy(v, value)

	d.cache.Set(string(key), v)
	d.batch.Put(key, v)
}

// PutN - store a uint64 as 8 byte big endian
func (d *Database) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	d.Put(key, buffer)
}

// Get - read a value for a given key
//
// pending writes of the open transaction are visible; nil if absent
func (d *Database) Get(key []byte) []byte {
	if value, found := d.cache.Get(string(key)); found {
		return value
	}

	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("storage.Get", err)
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (d *Database) GetN(key []byte) (uint64, bool) {
	buffer := d.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("storage.GetN truncated record for: %q: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a key exists
func (d *Database) Has(key []byte) bool {
	if _, found := d.cache.Get(string(key)); found {
		return true
	}
	found, err := d.db.Has(key, nil)
	logger.PanicIfError("storage.Has", err)
	return found
}

// Fetch - committed elements whose key starts with prefix, in key order
//
// at most count elements are returned, count <= 0 means all
func (d *Database) Fetch(prefix []byte, count int) []Element {
	iter := d.db.NewIterator(ldb_util.BytesPrefix(prefix), nil)
	defer iter.Release()

	results := make([]Element, 0)
	for iter.Next() {
		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		if bytes.Equal(key, versionKey) {
			continue
		}
		dataKey := make([]byte, len(key))
		copy(dataKey, key)

		value := iter.Value()
		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
		if count > 0 && len(results) >= count {
			break
		}
	}
	logger.PanicIfError("storage.Fetch", iter.Error())
	return results
}
