// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec provides the canonical byte encoding used for
// hashing, signing and storage of ledger values.
//
// Every encodable value produces exactly one byte representation; the
// canonical digest of a value is the SHA-256 of that representation.
// Length-prefixed framing allows a sequence of records to be decoded
// from a single buffer.
package codec

import (
	"encoding"
	"encoding/binary"
	"fmt"

	"github.com/horizcoin/horizcoind/digest"
	"github.com/horizcoin/horizcoind/fault"
)

// number of bytes in the little endian length prefix
const lengthPrefixSize = 4

// Record - a value with a canonical binary form
type Record interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// Encode - canonical encoding of a value
func Encode(value encoding.BinaryMarshaler) ([]byte, error) {
	return value.MarshalBinary()
}

// Decode - rebuild a value from its canonical encoding
//
// the whole buffer must be consumed; decoders reject trailing bytes
func Decode(buffer []byte, value encoding.BinaryUnmarshaler) error {
	return value.UnmarshalBinary(buffer)
}

// EncodeWithLength - canonical encoding prefixed with a 4 byte little
// endian payload length
func EncodeWithLength(value encoding.BinaryMarshaler) ([]byte, error) {
	data, err := Encode(value)
	if err != nil {
		return nil, err
	}
	buffer := make([]byte, lengthPrefixSize, lengthPrefixSize+len(data))
	binary.LittleEndian.PutUint32(buffer, uint32(len(data)))
	return append(buffer, data...), nil
}

// DecodeWithLength - decode one length-prefixed record from the start
// of a buffer
//
// returns the total number of bytes consumed (prefix plus payload) so
// a caller can decode a sequence of framed records
func DecodeWithLength(buffer []byte, value encoding.BinaryUnmarshaler) (int, error) {
	if len(buffer) < lengthPrefixSize {
		return 0, fmt.Errorf("%w: need %d bytes for length prefix, have %d", fault.ErrTruncatedBuffer, lengthPrefixSize, len(buffer))
	}
	// compare in uint64 so a huge declared length cannot wrap a
	// 32-bit int before the bounds check
	declared := binary.LittleEndian.Uint32(buffer)
	if uint64(len(buffer)-lengthPrefixSize) < uint64(declared) {
		return 0, fmt.Errorf("%w: declared payload %d bytes, have %d", fault.ErrTruncatedBuffer, declared, len(buffer)-lengthPrefixSize)
	}
	payloadLength := int(declared)
	err := Decode(buffer[lengthPrefixSize:lengthPrefixSize+payloadLength], value)
	if err != nil {
		return 0, err
	}
	return lengthPrefixSize + payloadLength, nil
}

// DigestOf - canonical digest of a value
//
// equal to digesting the canonical encoding directly
func DigestOf(value encoding.BinaryMarshaler) (digest.Digest, error) {
	data, err := Encode(value)
	if err != nil {
		return digest.Digest{}, err
	}
	return digest.NewDigest(data), nil
}

// append helpers shared by the record packers

// AppendUint32 - append a 4 byte little endian value
func AppendUint32(buffer []byte, value uint32) []byte {
	return binary.LittleEndian.AppendUint32(buffer, value)
}

// AppendUint64 - append an 8 byte little endian value
func AppendUint64(buffer []byte, value uint64) []byte {
	return binary.LittleEndian.AppendUint64(buffer, value)
}

// AppendVarint64 - append a varint encoded value
func AppendVarint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a varint byte count followed by the bytes
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// AppendString - append a varint byte count followed by the UTF-8 bytes
func AppendString(buffer []byte, s string) []byte {
	return AppendBytes(buffer, []byte(s))
}
