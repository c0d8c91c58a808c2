// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest provides the 32 byte SHA-256 value used for all
// content addressing in the ledger.
//
// The all-zero digest is a sentinel meaning "no digest" and is used
// as the previous-block reference of the genesis block.
package digest

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/horizcoin/horizcoind/fault"
)

// Length - number of bytes in the digest
const Length = 32

// Digest - type for a digest
// stored and displayed as big endian hex value
// to convert to bytes just use d[:]
type Digest [Length]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha256.Sum256(record)
}

// NewDoubleDigest - create a double SHA-256 digest from a byte slice
//
// kept as a separate operation: transaction ids and merkle nodes use
// single hashing, do not conflate the two
func NewDoubleDigest(record []byte) Digest {
	first := sha256.Sum256(record)
	return sha256.Sum256(first[:])
}

// IsZero - true if the digest is the all-zero sentinel
func (digest Digest) IsZero() bool {
	return digest == Digest{}
}

// Cmp - total order by byte content
// returns -1, 0 or +1 like bytes.Compare
func (digest Digest) Cmp(other Digest) int {
	return bytes.Compare(digest[:], other[:])
}

// String - convert a binary digest to lowercase hex string for use by
// the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - convert a binary digest to hex string for use by the fmt
// package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA-256:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidDigestLength
	}
	buffer := make([]byte, Length)
	byteCount, err := hex.Decode(buffer, s)
	if err != nil {
		return err
	}
	if Length != byteCount {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}

// DigestFromHex - convert a 64 character hex string to a digest
func DigestFromHex(s string) (Digest, error) {
	var digest Digest
	err := digest.UnmarshalText([]byte(s))
	return digest, err
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(buffer []byte) (Digest, error) {
	var digest Digest
	if Length != len(buffer) {
		return digest, fmt.Errorf("%w: have %d bytes", fault.ErrInvalidDigestLength, len(buffer))
	}
	copy(digest[:], buffer)
	return digest, nil
}
