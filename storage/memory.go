// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"sort"
	"sync"

	"github.com/horizcoin/horizcoind/fault"
)

// MemoryStore - a map backed store for tests and ephemeral chains
type MemoryStore struct {
	sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore - an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

// Get - fetch a value
func (store *MemoryStore) Get(key []byte) ([]byte, bool, error) {
	store.RLock()
	defer store.RUnlock()

	value, ok := store.data[string(key)]
	if !ok {
		return nil, false, nil
	}
	result := make([]byte, len(value))
	copy(result, value)
	return result, true, nil
}

// Put - store a value
func (store *MemoryStore) Put(key []byte, value []byte) error {
	store.Lock()
	defer store.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	store.data[string(key)] = stored
	return nil
}

// Delete - remove a key
func (store *MemoryStore) Delete(key []byte) error {
	store.Lock()
	defer store.Unlock()

	delete(store.data, string(key))
	return nil
}

// Has - check whether a key is present
func (store *MemoryStore) Has(key []byte) (bool, error) {
	store.RLock()
	defer store.RUnlock()

	_, ok := store.data[string(key)]
	return ok, nil
}

// ScanPrefix - all elements whose key carries the prefix, ascending
func (store *MemoryStore) ScanPrefix(prefix []byte) ([]Element, error) {
	return store.scan(func(key []byte) bool {
		return bytes.HasPrefix(key, prefix)
	})
}

// ScanRange - all elements in [start, limit), ascending
func (store *MemoryStore) ScanRange(start []byte, limit []byte) ([]Element, error) {
	return store.scan(func(key []byte) bool {
		if bytes.Compare(key, start) < 0 {
			return false
		}
		return nil == limit || bytes.Compare(key, limit) < 0
	})
}

func (store *MemoryStore) scan(match func(key []byte) bool) ([]Element, error) {
	store.RLock()
	defer store.RUnlock()

	elements := []Element(nil)
	for key, value := range store.data {
		if !match([]byte(key)) {
			continue
		}
		element := Element{
			Key:   []byte(key),
			Value: make([]byte, len(value)),
		}
		copy(element.Value, value)
		elements = append(elements, element)
	}
	sort.Slice(elements, func(i int, j int) bool {
		return bytes.Compare(elements[i].Key, elements[j].Key) < 0
	})
	return elements, nil
}

type memoryOperation struct {
	isDelete bool
	key      []byte
	value    []byte
}

type memoryBatch struct {
	operations []memoryOperation
}

func (batch *memoryBatch) Put(key []byte, value []byte) {
	k := make([]byte, len(key))
	copy(k, key)
	v := make([]byte, len(value))
	copy(v, value)
	batch.operations = append(batch.operations, memoryOperation{key: k, value: v})
}

func (batch *memoryBatch) Delete(key []byte) {
	k := make([]byte, len(key))
	copy(k, key)
	batch.operations = append(batch.operations, memoryOperation{isDelete: true, key: k})
}

// NewBatch - an empty batch bound to this backend type
func (store *MemoryStore) NewBatch() Batch {
	return &memoryBatch{}
}

// WriteBatch - apply all batched operations under one lock
func (store *MemoryStore) WriteBatch(batch Batch) error {
	b, ok := batch.(*memoryBatch)
	if !ok {
		return fault.ErrIncompatibleBatch
	}

	store.Lock()
	defer store.Unlock()

	for _, op := range b.operations {
		if op.isDelete {
			delete(store.data, string(op.key))
		} else {
			store.data[string(op.key)] = op.value
		}
	}
	return nil
}

// Close - release the map
func (store *MemoryStore) Close() error {
	store.Lock()
	defer store.Unlock()

	store.data = make(map[string][]byte)
	return nil
}
