// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"

	"github.com/horizcoin/horizcoind/account"
	"github.com/horizcoin/horizcoind/constants"
	"github.com/horizcoin/horizcoind/fault"
)

// Validate - structural checks independent of chain state
//
// checks counts, memo size, duplicate input references, output
// amounts and address syntax; signature checks are separate, see
// VerifySignatures
func (tx *Transaction) Validate() error {
	if 0 == len(tx.Inputs) {
		return fault.ErrMissingInputs
	}
	if 0 == len(tx.Outputs) {
		return fault.ErrMissingOutputs
	}
	if len(tx.Memo) > constants.MaxMemoLength {
		return fmt.Errorf("%w: %d bytes, limit %d", fault.ErrMemoTooLong, len(tx.Memo), constants.MaxMemoLength)
	}

	type outpoint struct {
		txId  TxId
		index uint32
	}
	seen := make(map[outpoint]struct{}, len(tx.Inputs))
	for i, in := range tx.Inputs {
		op := outpoint{txId: in.PrevTx, index: in.OutputIndex}
		if _, ok := seen[op]; ok {
			return fmt.Errorf("%w: input %d references %s:%d again", fault.ErrDuplicateInput, i, in.PrevTx, in.OutputIndex)
		}
		seen[op] = struct{}{}
	}

	for i, out := range tx.Outputs {
		if 0 == out.Amount {
			return fmt.Errorf("%w: output %d", fault.ErrZeroOutputAmount, i)
		}
		if !account.IsValidAddress(out.Address) {
			return fmt.Errorf("output %d: %w: %q", i, fault.ErrInvalidAddress, out.Address)
		}
	}

	return nil
}

// Sign - sign every input with its matching private key
//
// keys are positional: key i signs input i; all inputs commit to the
// same signature hash so signatures do not cover each other
func (tx *Transaction) Sign(keys []*account.PrivateKey) error {
	if len(keys) != len(tx.Inputs) {
		return fmt.Errorf("%w: %d keys for %d inputs", fault.ErrKeyCountMismatch, len(keys), len(tx.Inputs))
	}

	// public keys are part of the signed encoding, set them first
	for i, key := range keys {
		tx.Inputs[i].PublicKey = key.PublicKey()
		tx.Inputs[i].Signature = nil
	}

	hash := tx.SignatureHash()
	for i, key := range keys {
		tx.Inputs[i].Signature = key.Sign(hash[:])
	}
	return nil
}

// VerifySignatures - check every input signature
//
// a coinbase transaction carries no signatures and always passes
func (tx *Transaction) VerifySignatures() error {
	if tx.IsCoinbase() {
		return nil
	}

	hash := tx.SignatureHash()
	for i, in := range tx.Inputs {
		if !in.PublicKey.Verify(hash[:], in.Signature) {
			return fmt.Errorf("input %d: %w", i, fault.ErrInvalidSignature)
		}
	}
	return nil
}
