// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"fmt"
	"time"

	"github.com/horizcoin/horizcoind/constants"
	"github.com/horizcoin/horizcoind/fault"
	"github.com/horizcoin/horizcoind/transaction"
)

// Validator - contextual block checks with configurable clock and
// timestamp tolerances
//
// Now is injectable so the skew windows can be tested against a fixed
// instant
type Validator struct {
	FutureSkew uint64        // seconds a timestamp may lead the clock
	PastSkew   uint64        // seconds a timestamp may trail the clock
	Now        func() uint64 // current unix time in seconds
}

// NewValidator - a validator with the protocol default windows and
// the system clock
func NewValidator() *Validator {
	return &Validator{
		FutureSkew: constants.BlockTimestampFutureSkew,
		PastSkew:   constants.BlockTimestampPastSkew,
		Now: func() uint64 {
			return uint64(time.Now().Unix())
		},
	}
}

// Validate - check a block against the clock and its own contents
//
// order of checks: timestamp window, merkle root, per-transaction
// structure, duplicate transactions; an empty transaction list
// passes. Signatures are a separate stage, see Block.VerifySignatures
func (v *Validator) Validate(blk *Block) error {
	now := v.Now()

	if blk.Header.Timestamp > now+v.FutureSkew {
		return fmt.Errorf("%w: %d is beyond %d+%d", fault.ErrTimestampTooFarInFuture, blk.Header.Timestamp, now, v.FutureSkew)
	}
	// the lower bound saturates at zero for early clock values
	if now > v.PastSkew && blk.Header.Timestamp < now-v.PastSkew {
		return fmt.Errorf("%w: %d is before %d-%d", fault.ErrTimestampTooFarInPast, blk.Header.Timestamp, now, v.PastSkew)
	}

	ok, err := blk.VerifyMerkleRoot()
	if err != nil {
		return err
	}
	if !ok {
		return fault.ErrMerkleRootMismatch
	}

	seen := make(map[transaction.TxId]struct{}, len(blk.Transactions))
	for i := range blk.Transactions {
		tx := &blk.Transactions[i]
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		txId, err := tx.Id()
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		if _, ok := seen[txId]; ok {
			return fmt.Errorf("%w: %s at position %d", fault.ErrDuplicateTransaction, txId, i)
		}
		seen[txId] = struct{}{}
	}

	return nil
}
