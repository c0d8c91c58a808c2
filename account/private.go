// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/horizcoin/horizcoind/digest"
	"github.com/horizcoin/horizcoind/fault"
)

// PrivateKeyLength - number of bytes in a raw private scalar
const PrivateKeyLength = 32

// PrivateKey - a secp256k1 signing key
//
// its textual representation is always redacted; the raw scalar is
// only reachable through Bytes
type PrivateKey struct {
	key *btcec.PrivateKey
}

// NewPrivateKey - generate a random keypair
func NewPrivateKey() (*PrivateKey, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes - rebuild a private key from its raw scalar
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	if PrivateKeyLength != len(buffer) {
		return nil, fault.ErrInvalidPrivateKey
	}
	key, _ := btcec.PrivKeyFromBytes(buffer)
	if key.Key.IsZero() {
		return nil, fault.ErrInvalidPrivateKey
	}
	return &PrivateKey{key: key}, nil
}

// PublicKey - the corresponding compressed public key
func (prv *PrivateKey) PublicKey() PublicKey {
	var pub PublicKey
	copy(pub[:], prv.key.PubKey().SerializeCompressed())
	return pub
}

// Sign - DER signature over the SHA-256 digest of a message
func (prv *PrivateKey) Sign(message []byte) []byte {
	messageDigest := digest.NewDigest(message)
	return ecdsa.Sign(prv.key, messageDigest[:]).Serialize()
}

// Bytes - the raw scalar
//
// handle with care: this exposes the secret
func (prv *PrivateKey) Bytes() []byte {
	return prv.key.Serialize()
}

// String - redacted form for use by the fmt package (for %s and %v)
func (prv *PrivateKey) String() string {
	return "PrivateKey[REDACTED]"
}

// GoString - redacted form for use by the fmt package (for %#v)
func (prv *PrivateKey) GoString() string {
	return "PrivateKey[REDACTED]"
}
