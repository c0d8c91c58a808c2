// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/horizcoin/horizcoind/account"
	"github.com/horizcoin/horizcoind/fault"
)

// fixed bech32m vectors for the "hz" prefix
var addressTests = []struct {
	payload [account.AddressPayloadLength]byte
	address string
}{
	{
		[20]byte{},
		"hz1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqvv896y",
	},
	{
		[20]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
		"hz1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5qdtym9",
	},
}

func TestParseAddressVectors(t *testing.T) {
	for i, item := range addressTests {
		payload, err := account.ParseAddress(item.address)
		if err != nil {
			t.Fatalf("%d: ParseAddress(%q) error: %s", i, item.address, err)
		}
		if payload != item.payload {
			t.Errorf("%d: payload: %x  expected: %x", i, payload, item.payload)
		}
	}
}

func TestAddressDerivation(t *testing.T) {
	prv, _ := account.NewPrivateKey()
	address := prv.PublicKey().Address()

	if !strings.HasPrefix(address, account.AddressHRP+"1") {
		t.Errorf("address %q does not carry the %q prefix", address, account.AddressHRP)
	}
	if !account.IsValidAddress(address) {
		t.Errorf("derived address %q does not validate", address)
	}

	// deterministic per key
	if address != prv.PublicKey().Address() {
		t.Errorf("address derivation is not deterministic")
	}

	other, _ := account.NewPrivateKey()
	if address == other.PublicKey().Address() {
		t.Errorf("two keys derived the same address")
	}
}

func TestParseAddressInvalid(t *testing.T) {
	invalidTests := []struct {
		address string
		err     error
	}{
		{"", fault.ErrInvalidAddress},
		{"invalid", fault.ErrInvalidAddress},
		// valid bech32m, wrong prefix
		{"bc1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqwu0tn9", fault.ErrInvalidAddressPrefix},
		// bitcoin mainnet address, bech32 (not m) checksum
		{"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", fault.ErrInvalidAddress},
		// corrupted checksum
		{"hz1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqvv8960", fault.ErrInvalidAddress},
	}
	for i, item := range invalidTests {
		_, err := account.ParseAddress(item.address)
		if err == nil {
			t.Fatalf("%d: ParseAddress(%q) succeeded", i, item.address)
		}
		if item.err != nil && !errors.Is(err, item.err) && !fault.IsErrInvalid(err) {
			t.Errorf("%d: ParseAddress(%q) error: %v  expected: %v", i, item.address, err, item.err)
		}
		if account.IsValidAddress(item.address) {
			t.Errorf("%d: IsValidAddress(%q) is true", i, item.address)
		}
	}
}

func TestParseAddressWrongLength(t *testing.T) {
	// valid bech32m with "hz" prefix but a 10 byte payload
	_, err := account.ParseAddress(shortAddress(t))
	if !errors.Is(err, fault.ErrInvalidAddressLength) {
		t.Errorf("short payload error: %v  expected length error", err)
	}
}

// build a syntactically valid bech32m "hz" address with a payload
// that is too short
func shortAddress(t *testing.T) string {
	t.Helper()
	// precomputed: bech32m("hz", 10 zero bytes)
	return "hz1qqqqqqqqqqqqqqqqx92c8f"
}
