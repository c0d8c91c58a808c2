// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage provides the key-value persistence layer behind
// the ledger.
//
// Two backends implement the same interface: a LevelDB store for
// durable data and an in-memory store for tests and ephemeral use.
// Batches group writes so a block and its index entries commit
// atomically; a batch can only be written back to the store that
// created it.
package storage

// Element - a key-value pair returned by scans
type Element struct {
	Key   []byte
	Value []byte
}

// Batch - a group of writes applied atomically
type Batch interface {
	Put(key []byte, value []byte)
	Delete(key []byte)
}

// Storage - the backend interface
//
// scan results are ordered by ascending key; ScanRange covers the
// half-open interval [start, limit)
type Storage interface {
	Get(key []byte) ([]byte, bool, error)
	Put(key []byte, value []byte) error
	Delete(key []byte) error
	Has(key []byte) (bool, error)
	ScanPrefix(prefix []byte) ([]Element, error)
	ScanRange(start []byte, limit []byte) ([]Element, error)
	NewBatch() Batch
	WriteBatch(batch Batch) error
	Close() error
}
