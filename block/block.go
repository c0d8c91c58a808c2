// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"fmt"

	"github.com/horizcoin/horizcoind/codec"
	"github.com/horizcoin/horizcoind/digest"
	"github.com/horizcoin/horizcoind/fault"
	"github.com/horizcoin/horizcoind/merkle"
	"github.com/horizcoin/horizcoind/transaction"
)

// Version - current block format version
const Version uint32 = 1

// Block - a header together with its transactions
//
// an empty transaction list is legal; its merkle root is the digest
// of the empty byte string
type Block struct {
	Header       Header                    `json:"header"`
	Transactions []transaction.Transaction `json:"transactions"`
}

// NewBlock - assemble a block over a transaction list
//
// computes the merkle root from the transaction identifiers; the
// nonce starts at zero for the miner to vary
func NewBlock(previousBlock BlockId, transactions []transaction.Transaction, timestamp uint64, height uint32) (*Block, error) {
	root, err := transactionRoot(transactions)
	if err != nil {
		return nil, err
	}
	return &Block{
		Header: Header{
			Version:       Version,
			PreviousBlock: previousBlock,
			MerkleRoot:    root,
			Timestamp:     timestamp,
			Height:        height,
			Nonce:         0,
		},
		Transactions: transactions,
	}, nil
}

// merkle root over the transaction identifiers, in block order
func transactionRoot(transactions []transaction.Transaction) (digest.Digest, error) {
	leaves := make([]digest.Digest, len(transactions))
	for i := range transactions {
		txId, err := transactions[i].Id()
		if err != nil {
			return digest.Digest{}, err
		}
		leaves[i] = digest.Digest(txId)
	}
	return merkle.RootOf(leaves), nil
}

// Hash - block identifier, covering the header only
func (blk *Block) Hash() BlockId {
	return blk.Header.Hash()
}

// VerifySignatures - check the signatures of every transaction
//
// a separate stage from the structural checks in Validator.Validate:
// a block can be structurally valid while its transactions are still
// unsigned
func (blk *Block) VerifySignatures() error {
	for i := range blk.Transactions {
		if err := blk.Transactions[i].VerifySignatures(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return nil
}

// VerifyMerkleRoot - recompute the root and compare with the header
func (blk *Block) VerifyMerkleRoot() (bool, error) {
	root, err := transactionRoot(blk.Transactions)
	if err != nil {
		return false, err
	}
	return root == blk.Header.MerkleRoot, nil
}

// MarshalBinary - packed header followed by a varint transaction
// count and each transaction in its length-prefixed frame
func (blk *Block) MarshalBinary() ([]byte, error) {
	buffer, err := blk.Header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buffer = codec.AppendVarint64(buffer, uint64(len(blk.Transactions)))
	for i := range blk.Transactions {
		framed, err := codec.EncodeWithLength(&blk.Transactions[i])
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		buffer = append(buffer, framed...)
	}
	return buffer, nil
}

// UnmarshalBinary - rebuild a block from its canonical encoding
func (blk *Block) UnmarshalBinary(buffer []byte) error {
	r := codec.NewReader(buffer)

	var header Header
	headerBytes := r.FixedBytes(HeaderLength)
	if err := r.Err(); err != nil {
		return err
	}
	if err := header.UnmarshalBinary(headerBytes); err != nil {
		return err
	}

	count := r.Varint64()
	if err := r.Err(); err != nil {
		return err
	}

	// the count comes off the wire, cap the preallocation
	transactions := make([]transaction.Transaction, 0, min(count, 1024))
	remaining := buffer[r.Consumed():]
	for i := uint64(0); i < count; i += 1 {
		var tx transaction.Transaction
		consumed, err := codec.DecodeWithLength(remaining, &tx)
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		remaining = remaining[consumed:]
		transactions = append(transactions, tx)
	}
	if len(remaining) != 0 {
		return fmt.Errorf("%w: %d bytes remain after block", fault.ErrTrailingBytes, len(remaining))
	}

	blk.Header = header
	blk.Transactions = transactions
	return nil
}
