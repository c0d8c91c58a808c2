// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger persists blocks and transactions and indexes blocks
// by height.
//
// A block commits in one atomic batch together with all of its
// transactions and its height index entry, so a crash can never leave
// a block without its transactions.
package ledger

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/horizcoin/horizcoind/block"
	"github.com/horizcoin/horizcoind/codec"
	"github.com/horizcoin/horizcoind/storage"
	"github.com/horizcoin/horizcoind/transaction"
)

// namespace prefixes inside the backing store
const (
	blockPrefix       = 'B' // block id -> packed block
	transactionPrefix = 'T' // transaction id -> packed transaction
	heightPrefix      = 'H' // big endian height -> block id
)

// Store - block and transaction persistence over a storage backend
type Store struct {
	backend      storage.Storage
	blockPool    *storage.Pool
	txPool       *storage.Pool
	heights      *storage.Pool
	blocks       *storage.Typed[block.Block, *block.Block]
	transactions *storage.Typed[transaction.Transaction, *transaction.Transaction]
	log          *logger.L
}

// NewStore - bind the ledger namespaces to a backend
func NewStore(backend storage.Storage) *Store {
	blockPool := storage.NewPool(backend, blockPrefix)
	txPool := storage.NewPool(backend, transactionPrefix)
	return &Store{
		backend:      backend,
		blockPool:    blockPool,
		txPool:       txPool,
		heights:      storage.NewPool(backend, heightPrefix),
		blocks:       storage.NewTyped[block.Block](blockPool),
		transactions: storage.NewTyped[transaction.Transaction](txPool),
		log:          logger.New("ledger"),
	}
}

// big endian so lexicographic key order is height order
func heightKey(height uint32) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(height))
	return key
}

// StoreBlock - commit a block, its transactions and its height index
// in one batch
func (store *Store) StoreBlock(blk *block.Block) error {
	blockId := blk.Hash()

	packedBlock, err := codec.Encode(blk)
	if err != nil {
		return err
	}

	batch := store.backend.NewBatch()
	batch.Put(store.blockPool.Key(blockId[:]), packedBlock)
	batch.Put(store.heights.Key(heightKey(blk.Header.Height)), blockId[:])

	for i := range blk.Transactions {
		tx := &blk.Transactions[i]
		txId, err := tx.Id()
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		packedTx, err := codec.Encode(tx)
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		batch.Put(store.txPool.Key(txId[:]), packedTx)
	}

	if err := store.backend.WriteBatch(batch); err != nil {
		store.log.Errorf("store block %s failed: %s", blockId, err)
		return err
	}

	store.log.Infof("stored block %s at height %d with %d transactions", blockId, blk.Header.Height, len(blk.Transactions))
	return nil
}

// Block - fetch a block by identifier
func (store *Store) Block(blockId block.BlockId) (*block.Block, bool, error) {
	return store.blocks.Get(blockId[:])
}

// HasBlock - check whether a block is stored
func (store *Store) HasBlock(blockId block.BlockId) (bool, error) {
	return store.blocks.Has(blockId[:])
}

// Transaction - fetch a transaction by identifier
func (store *Store) Transaction(txId transaction.TxId) (*transaction.Transaction, bool, error) {
	return store.transactions.Get(txId[:])
}

// BlockAtHeight - fetch the block indexed at a height
func (store *Store) BlockAtHeight(height uint32) (*block.Block, bool, error) {
	data, ok, err := store.heights.Get(heightKey(height))
	if err != nil || !ok {
		return nil, ok, err
	}
	var blockId block.BlockId
	copy(blockId[:], data)
	return store.Block(blockId)
}

// LastBlock - the block with the highest indexed height
func (store *Store) LastBlock() (*block.Block, bool, error) {
	element, ok, err := store.heights.LastElement()
	if err != nil || !ok {
		return nil, ok, err
	}
	var blockId block.BlockId
	copy(blockId[:], element.Value)
	return store.Block(blockId)
}
