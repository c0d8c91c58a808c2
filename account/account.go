// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account provides the secp256k1 keypairs, ECDSA signatures
// and checksummed text addresses used to own and spend outputs.
//
// Signatures are DER encoded and are always computed over the
// SHA-256 digest of the message, never over the raw message.
package account

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/horizcoin/horizcoind/digest"
	"github.com/horizcoin/horizcoind/fault"
)

// PublicKeyLength - number of bytes in a compressed SEC1 point
const PublicKeyLength = 33

// PublicKey - a compressed secp256k1 public key
//
// the zero value is the placeholder key carried by coinbase inputs;
// it parses as no valid curve point and never verifies a signature
type PublicKey [PublicKeyLength]byte

// ParsePublicKey - convert and validate a compressed point
func ParsePublicKey(buffer []byte) (PublicKey, error) {
	var pub PublicKey
	if PublicKeyLength != len(buffer) {
		return pub, fault.ErrInvalidPublicKey
	}
	_, err := btcec.ParsePubKey(buffer)
	if err != nil {
		return pub, fault.ErrInvalidPublicKey
	}
	copy(pub[:], buffer)
	return pub, nil
}

// IsZero - true for the coinbase placeholder key
func (pub PublicKey) IsZero() bool {
	return pub == PublicKey{}
}

// Bytes - the compressed point as a fresh slice
func (pub PublicKey) Bytes() []byte {
	buffer := make([]byte, PublicKeyLength)
	copy(buffer, pub[:])
	return buffer
}

// Verify - check a DER signature over a message against this key
//
// the message is digested with SHA-256 before verification; returns
// false, never an error, on malformed key or signature bytes
func (pub PublicKey) Verify(message []byte, signature []byte) bool {
	key, err := btcec.ParsePubKey(pub[:])
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(signature)
	if err != nil {
		return false
	}
	messageDigest := digest.NewDigest(message)
	return sig.Verify(messageDigest[:], key)
}

// String - hex form of the compressed point for use by the fmt
// package (for %s)
func (pub PublicKey) String() string {
	return hex.EncodeToString(pub[:])
}

// MarshalText - convert to hex text
func (pub PublicKey) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(PublicKeyLength))
	hex.Encode(buffer, pub[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to a validated public key
func (pub *PublicKey) UnmarshalText(s []byte) error {
	if PublicKeyLength != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidPublicKey
	}
	buffer := make([]byte, PublicKeyLength)
	if _, err := hex.Decode(buffer, s); err != nil {
		return fault.ErrInvalidPublicKey
	}
	parsed, err := ParsePublicKey(buffer)
	if err != nil {
		return err
	}
	*pub = parsed
	return nil
}
