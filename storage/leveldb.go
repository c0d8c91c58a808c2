// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/horizcoin/horizcoind/fault"
)

// LevelDBStore - durable storage backed by a LevelDB database
type LevelDBStore struct {
	db  *leveldb.DB
	log *logger.L
}

// NewLevelDBStore - open or create the database directory
func NewLevelDBStore(path string) (*LevelDBStore, error) {
	log := logger.New("storage")

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		log.Criticalf("open %q failed: %s", path, err)
		return nil, err
	}
	log.Infof("opened database: %q", path)

	return &LevelDBStore{
		db:  db,
		log: log,
	}, nil
}

// Get - fetch a value
func (store *LevelDBStore) Get(key []byte) ([]byte, bool, error) {
	value, err := store.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Put - store a value
func (store *LevelDBStore) Put(key []byte, value []byte) error {
	return store.db.Put(key, value, nil)
}

// Delete - remove a key
func (store *LevelDBStore) Delete(key []byte) error {
	return store.db.Delete(key, nil)
}

// Has - check whether a key is present
func (store *LevelDBStore) Has(key []byte) (bool, error) {
	return store.db.Has(key, nil)
}

// ScanPrefix - all elements whose key carries the prefix, ascending
func (store *LevelDBStore) ScanPrefix(prefix []byte) ([]Element, error) {
	return store.iterate(ldb_util.BytesPrefix(prefix))
}

// ScanRange - all elements in [start, limit), ascending
//
// a nil limit scans to the end of the keyspace
func (store *LevelDBStore) ScanRange(start []byte, limit []byte) ([]Element, error) {
	return store.iterate(&ldb_util.Range{Start: start, Limit: limit})
}

func (store *LevelDBStore) iterate(keyRange *ldb_util.Range) ([]Element, error) {
	iter := store.db.NewIterator(keyRange, nil)
	defer iter.Release()

	elements := []Element(nil)
	for iter.Next() {
		// iterator buffers are reused, copy out
		element := Element{
			Key:   make([]byte, len(iter.Key())),
			Value: make([]byte, len(iter.Value())),
		}
		copy(element.Key, iter.Key())
		copy(element.Value, iter.Value())
		elements = append(elements, element)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return elements, nil
}

type levelDBBatch struct {
	batch *leveldb.Batch
}

func (batch *levelDBBatch) Put(key []byte, value []byte) {
	batch.batch.Put(key, value)
}

func (batch *levelDBBatch) Delete(key []byte) {
	batch.batch.Delete(key)
}

// NewBatch - an empty batch bound to this backend type
func (store *LevelDBStore) NewBatch() Batch {
	return &levelDBBatch{batch: new(leveldb.Batch)}
}

// WriteBatch - commit all batched operations in one write
func (store *LevelDBStore) WriteBatch(batch Batch) error {
	b, ok := batch.(*levelDBBatch)
	if !ok {
		return fault.ErrIncompatibleBatch
	}
	return store.db.Write(b.batch, nil)
}

// Close - flush and close the database
func (store *LevelDBStore) Close() error {
	store.log.Info("closing database")
	return store.db.Close()
}
