// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/horizcoin/horizcoind/codec"
	"github.com/horizcoin/horizcoind/fault"
)

var compactTests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{0xfc, []byte{0xfc}},
	{0xfd, []byte{0xfd, 0xfd, 0x00}},
	{0xffff, []byte{0xfd, 0xff, 0xff}},
	{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
	{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
	{0x100000000, []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

var compactTruncatedTests = [][]byte{
	{},
	{0xfd},
	{0xfd, 0x01},
	{0xfe, 0x01, 0x02, 0x03},
	{0xff, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
}

func TestToCompactUint64(t *testing.T) {
	for i, item := range compactTests {
		if result := codec.ToCompactUint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToCompactUint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestFromCompactUint64(t *testing.T) {
	for i, item := range compactTests {
		result, count, err := codec.FromCompactUint64(item.encoded)
		if err != nil {
			t.Fatalf("%d: FromCompactUint64(%x) error: %s", i, item.encoded, err)
		}
		if result != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromCompactUint64(%x) -> %d, %d  expected: %d, %d", i, item.encoded, result, count, item.value, len(item.encoded))
		}
	}
}

func TestFromCompactUint64Truncated(t *testing.T) {
	for i, buffer := range compactTruncatedTests {
		_, _, err := codec.FromCompactUint64(buffer)
		if !errors.Is(err, fault.ErrTruncatedBuffer) {
			t.Errorf("%d: FromCompactUint64(%x) error: %v  expected truncated buffer", i, buffer, err)
		}
	}
}

func TestCompactRoundTripBoundaries(t *testing.T) {
	// all four size classes and their boundaries
	values := []uint64{0, 0xfc, 0xfd, 0xfffe, 0xffff, 0x10000, 0xfffffffe, 0xffffffff, 0x100000000, 0xffffffffffffffff}
	for _, value := range values {
		encoded := codec.ToCompactUint64(value)
		decoded, count, err := codec.FromCompactUint64(encoded)
		if err != nil {
			t.Fatalf("FromCompactUint64(%x) error: %s", encoded, err)
		}
		if decoded != value || count != len(encoded) {
			t.Errorf("round trip: %d -> %x -> %d, %d", value, encoded, decoded, count)
		}
	}
}
