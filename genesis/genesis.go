// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis defines the fixed first block of the chain.
//
// Every node derives the identical genesis block, so its hash needs
// no distribution channel of its own.
package genesis

import (
	"github.com/horizcoin/horizcoind/block"
	"github.com/horizcoin/horizcoind/constants"
	"github.com/horizcoin/horizcoind/transaction"
)

// RecipientAddress - the address paid by the genesis coinbase
//
// the zero payload address; nobody holds its key, the initial reward
// is provably unspendable
const RecipientAddress = "hz1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqvv896y"

// Block - construct the genesis block
//
// height zero, zero previous block, a single coinbase paying the
// initial reward at the fixed genesis timestamp
func Block() *block.Block {
	coinbase := transaction.NewCoinbase(RecipientAddress, constants.InitialBlockReward, constants.GenesisTimestamp)

	blk, err := block.NewBlock(block.BlockId{}, []transaction.Transaction{*coinbase}, constants.GenesisTimestamp, 0)
	if err != nil {
		// the fixed contents always encode
		panic("genesis: " + err.Error())
	}
	return blk
}

// BlockId - the identifier every node computes for the genesis block
func BlockId() block.BlockId {
	return Block().Hash()
}
