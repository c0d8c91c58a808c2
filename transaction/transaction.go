// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction defines the transfer record, its canonical
// encoding, signing and structural validation.
//
// A transaction identifier is the SHA-256 digest of the complete
// canonical encoding, signatures included, so the identifier changes
// whenever a signature changes. The signature hash is computed over
// the same encoding with every input signature emptied.
package transaction

import (
	"github.com/horizcoin/horizcoind/account"
	"github.com/horizcoin/horizcoind/codec"
	"github.com/horizcoin/horizcoind/digest"
)

// CoinbaseOutputIndex - the sentinel output index carried by the
// single input of a coinbase transaction
const CoinbaseOutputIndex uint32 = 0xffffffff

// CoinbaseMemo - the memo placed on generated coinbase transactions
const CoinbaseMemo = "Mining reward"

// TxId - transaction identifier
//
// the canonical digest of the fully signed encoding
type TxId digest.Digest

// IsZero - true for the identifier referenced by coinbase inputs
func (txId TxId) IsZero() bool {
	return digest.Digest(txId).IsZero()
}

// String - hex form for use by the fmt package (for %s)
func (txId TxId) String() string {
	return digest.Digest(txId).String()
}

// MarshalText - convert to hex text
func (txId TxId) MarshalText() ([]byte, error) {
	return digest.Digest(txId).MarshalText()
}

// UnmarshalText - convert hex text to a transaction identifier
func (txId *TxId) UnmarshalText(s []byte) error {
	return (*digest.Digest)(txId).UnmarshalText(s)
}

// Input - a claim on a previous output
//
// a coinbase input references the zero transaction identifier with
// the sentinel output index and carries no usable signature or key
type Input struct {
	PrevTx      TxId              `json:"prevTx"`
	OutputIndex uint32            `json:"outputIndex"`
	Signature   []byte            `json:"signature"`
	PublicKey   account.PublicKey `json:"publicKey"`
}

// IsCoinbase - true for the synthetic input of a coinbase transaction
func (in Input) IsCoinbase() bool {
	return in.PrevTx.IsZero() && CoinbaseOutputIndex == in.OutputIndex
}

// Output - an amount payable to an address
type Output struct {
	Amount  uint64 `json:"amount"`
	Address string `json:"address"`
}

// Transaction - a transfer of value between addresses
type Transaction struct {
	Inputs    []Input  `json:"inputs"`
	Outputs   []Output `json:"outputs"`
	Memo      string   `json:"memo"`
	Timestamp uint64   `json:"timestamp"`
}

// NewCoinbase - build the reward transaction for a mined block
//
// the single input references no previous output and is never
// signature checked
func NewCoinbase(recipient string, amount uint64, timestamp uint64) *Transaction {
	return &Transaction{
		Inputs: []Input{{
			PrevTx:      TxId{},
			OutputIndex: CoinbaseOutputIndex,
		}},
		Outputs: []Output{{
			Amount:  amount,
			Address: recipient,
		}},
		Memo:      CoinbaseMemo,
		Timestamp: timestamp,
	}
}

// IsCoinbase - true when the only input is the coinbase sentinel
func (tx *Transaction) IsCoinbase() bool {
	return 1 == len(tx.Inputs) && tx.Inputs[0].IsCoinbase()
}

// Id - canonical identifier of the signed transaction
func (tx *Transaction) Id() (TxId, error) {
	d, err := codec.DigestOf(tx)
	if err != nil {
		return TxId{}, err
	}
	return TxId(d), nil
}

// UTXOLookup - resolve a referenced output to its amount
//
// returns false when the output is unknown to the caller
type UTXOLookup func(txId TxId, outputIndex uint32) (uint64, bool)

// TotalInputAmount - sum of the resolvable input amounts
//
// unresolvable inputs contribute zero; coinbase inputs always
// contribute zero
func (tx *Transaction) TotalInputAmount(lookup UTXOLookup) uint64 {
	total := uint64(0)
	for _, in := range tx.Inputs {
		if in.IsCoinbase() {
			continue
		}
		if amount, ok := lookup(in.PrevTx, in.OutputIndex); ok {
			total += amount
		}
	}
	return total
}

// TotalOutputAmount - sum of all output amounts
func (tx *Transaction) TotalOutputAmount() uint64 {
	total := uint64(0)
	for _, out := range tx.Outputs {
		total += out.Amount
	}
	return total
}

// Fee - inputs minus outputs, clamped at zero
func (tx *Transaction) Fee(lookup UTXOLookup) uint64 {
	in := tx.TotalInputAmount(lookup)
	out := tx.TotalOutputAmount()
	if out > in {
		return 0
	}
	return in - out
}
