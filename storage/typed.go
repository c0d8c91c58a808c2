// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/horizcoin/horizcoind/codec"
)

// Typed - a pool view that encodes and decodes one record type
//
// PT constrains *T to the canonical codec so values round trip
// through the store without caller side marshalling
type Typed[T any, PT interface {
	*T
	codec.Record
}] struct {
	pool *Pool
}

// NewTyped - bind a record type to a pool
func NewTyped[T any, PT interface {
	*T
	codec.Record
}](pool *Pool) *Typed[T, PT] {
	return &Typed[T, PT]{pool: pool}
}

// TypedElement - a decoded scan result
type TypedElement[T any] struct {
	Key   []byte
	Value *T
}

// Get - fetch and decode a record
func (typed *Typed[T, PT]) Get(key []byte) (*T, bool, error) {
	data, ok, err := typed.pool.Get(key)
	if err != nil || !ok {
		return nil, ok, err
	}
	value := new(T)
	if err := codec.Decode(data, PT(value)); err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Put - encode and store a record
func (typed *Typed[T, PT]) Put(key []byte, value *T) error {
	data, err := codec.Encode(PT(value))
	if err != nil {
		return err
	}
	return typed.pool.Put(key, data)
}

// Delete - remove a record
func (typed *Typed[T, PT]) Delete(key []byte) error {
	return typed.pool.Delete(key)
}

// Has - check whether a record is present
func (typed *Typed[T, PT]) Has(key []byte) (bool, error) {
	return typed.pool.Has(key)
}

// Elements - all records of the namespace, decoded, ascending
func (typed *Typed[T, PT]) Elements() ([]TypedElement[T], error) {
	elements, err := typed.pool.Elements()
	if err != nil {
		return nil, err
	}
	decoded := make([]TypedElement[T], 0, len(elements))
	for _, element := range elements {
		value := new(T)
		if err := codec.Decode(element.Value, PT(value)); err != nil {
			return nil, err
		}
		decoded = append(decoded, TypedElement[T]{
			Key:   element.Key,
			Value: value,
		})
	}
	return decoded, nil
}
