// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"
)

// Builder - incremental construction of an unsigned transaction
//
// calls chain; Build validates the assembled record and leaves the
// builder reusable
type Builder struct {
	tx Transaction
}

// NewBuilder - a builder with the current time as the default
// timestamp
func NewBuilder() *Builder {
	return &Builder{
		tx: Transaction{
			Timestamp: uint64(time.Now().Unix()),
		},
	}
}

// Input - add an unsigned input claiming a previous output
func (b *Builder) Input(prevTx TxId, outputIndex uint32) *Builder {
	b.tx.Inputs = append(b.tx.Inputs, Input{
		PrevTx:      prevTx,
		OutputIndex: outputIndex,
	})
	return b
}

// Output - add an amount payable to an address
func (b *Builder) Output(address string, amount uint64) *Builder {
	b.tx.Outputs = append(b.tx.Outputs, Output{
		Amount:  amount,
		Address: address,
	})
	return b
}

// Memo - attach a memo
func (b *Builder) Memo(memo string) *Builder {
	b.tx.Memo = memo
	return b
}

// Timestamp - override the default timestamp
func (b *Builder) Timestamp(timestamp uint64) *Builder {
	b.tx.Timestamp = timestamp
	return b
}

// Build - validate and return the assembled transaction
//
// the result is a copy; the builder can keep accumulating
func (b *Builder) Build() (*Transaction, error) {
	tx := Transaction{
		Inputs:    append([]Input(nil), b.tx.Inputs...),
		Outputs:   append([]Output(nil), b.tx.Outputs...),
		Memo:      b.tx.Memo,
		Timestamp: b.tx.Timestamp,
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return &tx, nil
}
