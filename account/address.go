// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/horizcoin/horizcoind/digest"
	"github.com/horizcoin/horizcoind/fault"
)

// address format constants
const (
	AddressHRP           = "hz" // human readable prefix
	AddressPayloadLength = 20   // leading bytes of SHA-256(compressed key)
)

// Address - derive the text address for a public key
//
// bech32m over the first 20 bytes of the SHA-256 of the compressed
// point
func (pub PublicKey) Address() string {
	payload := digest.NewDigest(pub[:])

	grouped, err := bech32.ConvertBits(payload[:AddressPayloadLength], 8, 5, true)
	if err != nil {
		panic("account: regroup of fixed-size payload failed: " + err.Error())
	}
	address, err := bech32.EncodeM(AddressHRP, grouped)
	if err != nil {
		panic("account: bech32m encode of fixed-size payload failed: " + err.Error())
	}
	return address
}

// ParseAddress - validate an address and extract its 20 byte payload
//
// rejects a wrong prefix, a wrong payload length and any checksum
// scheme other than bech32m
func ParseAddress(address string) ([AddressPayloadLength]byte, error) {
	var payload [AddressPayloadLength]byte

	hrp, grouped, version, err := bech32.DecodeGeneric(address)
	if err != nil {
		return payload, fmt.Errorf("%w: %s", fault.ErrInvalidAddress, err)
	}
	if version != bech32.VersionM {
		return payload, fault.ErrInvalidAddress
	}
	if hrp != AddressHRP {
		return payload, fault.ErrInvalidAddressPrefix
	}

	decoded, err := bech32.ConvertBits(grouped, 5, 8, false)
	if err != nil {
		return payload, fmt.Errorf("%w: %s", fault.ErrInvalidAddress, err)
	}
	if AddressPayloadLength != len(decoded) {
		return payload, fault.ErrInvalidAddressLength
	}

	copy(payload[:], decoded)
	return payload, nil
}

// IsValidAddress - address validity check
func IsValidAddress(address string) bool {
	_, err := ParseAddress(address)
	return err == nil
}
