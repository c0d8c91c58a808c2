// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/horizcoin/horizcoind/storage"
)

func TestPoolNamespaces(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()

	first := storage.NewPool(store, 'A')
	second := storage.NewPool(store, 'B')

	key := []byte("shared-key")
	first.Put(key, []byte("first"))
	second.Put(key, []byte("second"))

	got, ok, _ := first.Get(key)
	if !ok || !bytes.Equal(got, []byte("first")) {
		t.Errorf("pool A value: %q", got)
	}
	got, ok, _ = second.Get(key)
	if !ok || !bytes.Equal(got, []byte("second")) {
		t.Errorf("pool B value: %q", got)
	}

	first.Delete(key)
	if has, _ := first.Has(key); has {
		t.Errorf("pool A key survives Delete")
	}
	if has, _ := second.Has(key); !has {
		t.Errorf("pool B key deleted by pool A")
	}
}

func TestPoolElements(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()

	pool := storage.NewPool(store, 'P')
	other := storage.NewPool(store, 'Q')

	pool.Put([]byte{0x02}, []byte("two"))
	pool.Put([]byte{0x01}, []byte("one"))
	other.Put([]byte{0x09}, []byte("elsewhere"))

	elements, err := pool.Elements()
	if err != nil {
		t.Fatalf("Elements error: %s", err)
	}
	if 2 != len(elements) {
		t.Fatalf("scanned %d elements  expected: 2", len(elements))
	}
	// prefix stripped, ascending order
	if !bytes.Equal(elements[0].Key, []byte{0x01}) || !bytes.Equal(elements[1].Key, []byte{0x02}) {
		t.Errorf("keys: %x, %x", elements[0].Key, elements[1].Key)
	}

	last, ok, err := pool.LastElement()
	if err != nil || !ok {
		t.Fatalf("LastElement: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(last.Value, []byte("two")) {
		t.Errorf("last element value: %q", last.Value)
	}

	empty := storage.NewPool(store, 'Z')
	_, ok, err = empty.LastElement()
	if err != nil || ok {
		t.Errorf("LastElement on empty pool: ok=%v err=%v", ok, err)
	}
}

func TestPoolKeyInBatch(t *testing.T) {
	store := storage.NewMemoryStore()
	defer store.Close()

	pool := storage.NewPool(store, 'K')

	batch := store.NewBatch()
	batch.Put(pool.Key([]byte("inside")), []byte("value"))
	if err := store.WriteBatch(batch); err != nil {
		t.Fatalf("WriteBatch error: %s", err)
	}

	got, ok, _ := pool.Get([]byte("inside"))
	if !ok || !bytes.Equal(got, []byte("value")) {
		t.Errorf("batched pool write not visible: %q", got)
	}
}
