// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/horizcoin/horizcoind/account"
	"github.com/horizcoin/horizcoind/block"
	"github.com/horizcoin/horizcoind/digest"
	"github.com/horizcoin/horizcoind/ledger"
	"github.com/horizcoin/horizcoind/storage"
	"github.com/horizcoin/horizcoind/transaction"
)

const testTimestamp = uint64(1700000000)

func TestMain(m *testing.M) {
	os.Exit(runTests(m))
}

func runTests(m *testing.M) int {
	directory, err := os.MkdirTemp("", "ledger-test-log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "temporary log directory error: %s\n", err)
		return 1
	}
	defer os.RemoveAll(directory)

	err = logger.Initialise(logger.Configuration{
		Directory: directory,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger initialise error: %s\n", err)
		return 1
	}
	defer logger.Finalise()

	return m.Run()
}

func testBlock(t *testing.T, previous block.BlockId, height uint32, txCount int) *block.Block {
	t.Helper()

	prv, err := account.NewPrivateKey()
	if err != nil {
		t.Fatalf("key generation error: %s", err)
	}
	address := prv.PublicKey().Address()

	transactions := make([]transaction.Transaction, 0, txCount)
	for i := 0; i < txCount; i += 1 {
		tx, err := transaction.NewBuilder().
			Input(transaction.TxId(digest.NewDigest([]byte{byte(height), byte(i)})), uint32(i)).
			Output(address, uint64(100+i)).
			Timestamp(testTimestamp).
			Build()
		if err != nil {
			t.Fatalf("build error: %s", err)
		}
		if err := tx.Sign([]*account.PrivateKey{prv}); err != nil {
			t.Fatalf("sign error: %s", err)
		}
		transactions = append(transactions, *tx)
	}

	blk, err := block.NewBlock(previous, transactions, testTimestamp+uint64(height), height)
	if err != nil {
		t.Fatalf("NewBlock error: %s", err)
	}
	return blk
}

func TestStoreAndFetchBlock(t *testing.T) {
	store := ledger.NewStore(storage.NewMemoryStore())

	blk := testBlock(t, block.BlockId{}, 0, 2)
	if err := store.StoreBlock(blk); err != nil {
		t.Fatalf("StoreBlock error: %s", err)
	}

	blockId := blk.Hash()
	if has, _ := store.HasBlock(blockId); !has {
		t.Fatalf("stored block not found by HasBlock")
	}

	got, ok, err := store.Block(blockId)
	if err != nil || !ok {
		t.Fatalf("Block: ok=%v err=%v", ok, err)
	}
	if got.Hash() != blockId {
		t.Errorf("fetched block hash differs")
	}
	if len(got.Transactions) != 2 {
		t.Errorf("fetched %d transactions  expected: 2", len(got.Transactions))
	}

	_, ok, err = store.Block(block.BlockId(digest.NewDigest([]byte("missing"))))
	if err != nil || ok {
		t.Errorf("missing block: ok=%v err=%v", ok, err)
	}
}

func TestTransactionsIndexedWithBlock(t *testing.T) {
	store := ledger.NewStore(storage.NewMemoryStore())

	blk := testBlock(t, block.BlockId{}, 0, 3)
	if err := store.StoreBlock(blk); err != nil {
		t.Fatalf("StoreBlock error: %s", err)
	}

	for i := range blk.Transactions {
		txId, _ := blk.Transactions[i].Id()
		tx, ok, err := store.Transaction(txId)
		if err != nil || !ok {
			t.Fatalf("transaction %d: ok=%v err=%v", i, ok, err)
		}
		gotId, _ := tx.Id()
		if gotId != txId {
			t.Errorf("transaction %d id differs after round trip", i)
		}
	}

	_, ok, err := store.Transaction(transaction.TxId(digest.NewDigest([]byte("missing"))))
	if err != nil || ok {
		t.Errorf("missing transaction: ok=%v err=%v", ok, err)
	}
}

func TestHeightIndex(t *testing.T) {
	store := ledger.NewStore(storage.NewMemoryStore())

	_, ok, err := store.LastBlock()
	if err != nil || ok {
		t.Fatalf("LastBlock on empty store: ok=%v err=%v", ok, err)
	}

	previous := block.BlockId{}
	blocks := make([]*block.Block, 0, 3)
	for height := uint32(0); height < 3; height += 1 {
		blk := testBlock(t, previous, height, 1)
		if err := store.StoreBlock(blk); err != nil {
			t.Fatalf("StoreBlock at %d error: %s", height, err)
		}
		previous = blk.Hash()
		blocks = append(blocks, blk)
	}

	for height := uint32(0); height < 3; height += 1 {
		got, ok, err := store.BlockAtHeight(height)
		if err != nil || !ok {
			t.Fatalf("BlockAtHeight(%d): ok=%v err=%v", height, ok, err)
		}
		if got.Hash() != blocks[height].Hash() {
			t.Errorf("height %d returned the wrong block", height)
		}
	}

	_, ok, err = store.BlockAtHeight(99)
	if err != nil || ok {
		t.Errorf("BlockAtHeight(99): ok=%v err=%v", ok, err)
	}

	last, ok, err := store.LastBlock()
	if err != nil || !ok {
		t.Fatalf("LastBlock: ok=%v err=%v", ok, err)
	}
	if last.Header.Height != 2 {
		t.Errorf("last block height: %d  expected: 2", last.Header.Height)
	}
}

func TestLedgerOverLevelDB(t *testing.T) {
	backend, err := storage.NewLevelDBStore(t.TempDir())
	if err != nil {
		t.Fatalf("open error: %s", err)
	}
	defer backend.Close()

	store := ledger.NewStore(backend)
	blk := testBlock(t, block.BlockId{}, 0, 2)
	if err := store.StoreBlock(blk); err != nil {
		t.Fatalf("StoreBlock error: %s", err)
	}

	got, ok, err := store.BlockAtHeight(0)
	if err != nil || !ok {
		t.Fatalf("BlockAtHeight: ok=%v err=%v", ok, err)
	}
	if got.Hash() != blk.Hash() {
		t.Errorf("fetched block hash differs")
	}
}
