// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Pool - a single byte prefixed namespace inside a store
//
// several pools share one backend; each pool prepends its prefix
// byte to every key so the namespaces never collide
type Pool struct {
	prefix byte
	store  Storage
}

// NewPool - bind a prefix to a backend
func NewPool(store Storage, prefix byte) *Pool {
	return &Pool{
		prefix: prefix,
		store:  store,
	}
}

// Key - the prefixed form of a key, for use inside batches
func (pool *Pool) Key(key []byte) []byte {
	prefixed := make([]byte, 1, 1+len(key))
	prefixed[0] = pool.prefix
	return append(prefixed, key...)
}

// Get - fetch a value from this namespace
func (pool *Pool) Get(key []byte) ([]byte, bool, error) {
	return pool.store.Get(pool.Key(key))
}

// Put - store a value in this namespace
func (pool *Pool) Put(key []byte, value []byte) error {
	return pool.store.Put(pool.Key(key), value)
}

// Delete - remove a key from this namespace
func (pool *Pool) Delete(key []byte) error {
	return pool.store.Delete(pool.Key(key))
}

// Has - check whether a key is present in this namespace
func (pool *Pool) Has(key []byte) (bool, error) {
	return pool.store.Has(pool.Key(key))
}

// Elements - all elements of this namespace, ascending, with the
// prefix byte stripped from the keys
func (pool *Pool) Elements() ([]Element, error) {
	elements, err := pool.store.ScanPrefix([]byte{pool.prefix})
	if err != nil {
		return nil, err
	}
	for i := range elements {
		elements[i].Key = elements[i].Key[1:]
	}
	return elements, nil
}

// LastElement - the element with the highest key, if any
func (pool *Pool) LastElement() (Element, bool, error) {
	elements, err := pool.Elements()
	if err != nil {
		return Element{}, false, err
	}
	if 0 == len(elements) {
		return Element{}, false, nil
	}
	return elements[len(elements)-1], true, nil
}
