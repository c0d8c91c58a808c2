// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/horizcoin/horizcoind/account"
	"github.com/horizcoin/horizcoind/codec"
	"github.com/horizcoin/horizcoind/digest"
)

// layout of the canonical encoding:
//
//	varint      input count
//	per input:
//	  32 bytes  previous transaction id
//	  4 bytes   output index (little endian)
//	  varint    signature byte count, then the DER signature
//	  33 bytes  compressed public key
//	varint      output count
//	per output:
//	  compact   amount
//	  varint    address byte count, then the UTF-8 address
//	varint      memo byte count, then the UTF-8 memo
//	8 bytes     timestamp (little endian)

// MarshalBinary - the canonical encoding, signatures included
func (tx *Transaction) MarshalBinary() ([]byte, error) {
	return tx.pack(true), nil
}

// SignatureHash - digest that input signatures commit to
//
// the canonical encoding with every input signature replaced by a
// zero length signature, then digested with SHA-256
func (tx *Transaction) SignatureHash() digest.Digest {
	return digest.NewDigest(tx.pack(false))
}

func (tx *Transaction) pack(withSignatures bool) []byte {
	buffer := codec.AppendVarint64(nil, uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		buffer = append(buffer, in.PrevTx[:]...)
		buffer = codec.AppendUint32(buffer, in.OutputIndex)
		if withSignatures {
			buffer = codec.AppendBytes(buffer, in.Signature)
		} else {
			buffer = codec.AppendBytes(buffer, nil)
		}
		buffer = append(buffer, in.PublicKey[:]...)
	}

	buffer = codec.AppendVarint64(buffer, uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		buffer = append(buffer, codec.ToCompactUint64(out.Amount)...)
		buffer = codec.AppendString(buffer, out.Address)
	}

	buffer = codec.AppendString(buffer, tx.Memo)
	buffer = codec.AppendUint64(buffer, tx.Timestamp)
	return buffer
}

// UnmarshalBinary - rebuild a transaction from its canonical encoding
//
// the whole buffer must be consumed; public key bytes are carried as
// stored and validated later by VerifySignatures
func (tx *Transaction) UnmarshalBinary(buffer []byte) error {
	r := codec.NewReader(buffer)

	// counts come off the wire, cap the preallocation
	inputCount := r.Varint64()
	inputs := make([]Input, 0, min(inputCount, 1024))
	for i := uint64(0); i < inputCount && nil == r.Err(); i += 1 {
		var in Input
		copy(in.PrevTx[:], r.FixedBytes(digest.Length))
		in.OutputIndex = r.Uint32()
		in.Signature = r.Bytes()
		copy(in.PublicKey[:], r.FixedBytes(account.PublicKeyLength))
		inputs = append(inputs, in)
	}

	outputCount := r.Varint64()
	outputs := make([]Output, 0, min(outputCount, 1024))
	for i := uint64(0); i < outputCount && nil == r.Err(); i += 1 {
		var out Output
		out.Amount = r.CompactUint64()
		out.Address = r.String()
		outputs = append(outputs, out)
	}

	memo := r.String()
	timestamp := r.Uint64()

	if err := r.Done(); err != nil {
		return err
	}

	tx.Inputs = inputs
	tx.Outputs = outputs
	tx.Memo = memo
	tx.Timestamp = timestamp
	return nil
}
