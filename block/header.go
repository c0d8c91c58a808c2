// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package block defines the block header, the block record grouping
// transactions under a merkle root, and contextual validation of
// timestamps and contents.
package block

import (
	"encoding/binary"
	"fmt"

	"github.com/horizcoin/horizcoind/digest"
	"github.com/horizcoin/horizcoind/fault"
)

// BlockId - block identifier
//
// the SHA-256 digest of the packed header
type BlockId digest.Digest

// IsZero - true for the identifier referenced by the genesis block
func (blockId BlockId) IsZero() bool {
	return digest.Digest(blockId).IsZero()
}

// String - hex form for use by the fmt package (for %s)
func (blockId BlockId) String() string {
	return digest.Digest(blockId).String()
}

// MarshalText - convert to hex text
func (blockId BlockId) MarshalText() ([]byte, error) {
	return digest.Digest(blockId).MarshalText()
}

// UnmarshalText - convert hex text to a block identifier
func (blockId *BlockId) UnmarshalText(s []byte) error {
	return (*digest.Digest)(blockId).UnmarshalText(s)
}

// byte offsets into the packed header
const (
	versionOffset       = 0
	previousBlockOffset = versionOffset + 4
	merkleRootOffset    = previousBlockOffset + digest.Length
	timestampOffset     = merkleRootOffset + digest.Length
	heightOffset        = timestampOffset + 8
	nonceOffset         = heightOffset + 4

	// HeaderLength - total bytes in a packed header
	HeaderLength = nonceOffset + 8
)

// Header - the fixed size block header
//
// all integers pack little endian at fixed offsets so the header can
// be rehashed in place during mining
type Header struct {
	Version       uint32        `json:"version"`
	PreviousBlock BlockId       `json:"previousBlock"`
	MerkleRoot    digest.Digest `json:"merkleRoot"`
	Timestamp     uint64        `json:"timestamp"`
	Height        uint32        `json:"height"`
	Nonce         uint64        `json:"nonce"`
}

// MarshalBinary - pack the header into its fixed 88 byte form
func (header *Header) MarshalBinary() ([]byte, error) {
	buffer := make([]byte, HeaderLength)
	binary.LittleEndian.PutUint32(buffer[versionOffset:], header.Version)
	copy(buffer[previousBlockOffset:], header.PreviousBlock[:])
	copy(buffer[merkleRootOffset:], header.MerkleRoot[:])
	binary.LittleEndian.PutUint64(buffer[timestampOffset:], header.Timestamp)
	binary.LittleEndian.PutUint32(buffer[heightOffset:], header.Height)
	binary.LittleEndian.PutUint64(buffer[nonceOffset:], header.Nonce)
	return buffer, nil
}

// UnmarshalBinary - unpack a fixed 88 byte header
func (header *Header) UnmarshalBinary(buffer []byte) error {
	if HeaderLength != len(buffer) {
		return fmt.Errorf("%w: header needs %d bytes, have %d", fault.ErrTruncatedBuffer, HeaderLength, len(buffer))
	}
	header.Version = binary.LittleEndian.Uint32(buffer[versionOffset:])
	copy(header.PreviousBlock[:], buffer[previousBlockOffset:])
	copy(header.MerkleRoot[:], buffer[merkleRootOffset:])
	header.Timestamp = binary.LittleEndian.Uint64(buffer[timestampOffset:])
	header.Height = binary.LittleEndian.Uint32(buffer[heightOffset:])
	header.Nonce = binary.LittleEndian.Uint64(buffer[nonceOffset:])
	return nil
}

// Hash - block identifier of this header
func (header *Header) Hash() BlockId {
	packed, _ := header.MarshalBinary()
	return BlockId(digest.NewDigest(packed))
}
