// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"fmt"

	"github.com/horizcoin/horizcoind/fault"
)

// Varint64MaximumBytes - maximum possible number of bytes in a Varint64
//
// 64 bits in 7 bit groups needs at most 10 bytes
const Varint64MaximumBytes = 10

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven data bits per byte, least significant group first, most
// significant bit of each byte set while more bytes follow
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for value >= 0x80 {
		result = append(result, byte(value&0x7f|0x80))
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - convert a Varint64 from the beginning of a buffer
//
// also returns the number of bytes used
// fails on a buffer that ends before the continuation bit clears and
// on an encoding that does not fit in 64 bits
func FromVarint64(buffer []byte) (uint64, int, error) {
	result := uint64(0)
	shift := uint(0)

	for count, currentByte := range buffer {
		if count >= Varint64MaximumBytes {
			return 0, 0, fault.ErrVarintOverflow
		}
		if shift >= 64 {
			return 0, 0, fault.ErrVarintOverflow
		}
		result |= uint64(currentByte&0x7f) << shift
		if 0 == currentByte&0x80 {
			return result, count + 1, nil
		}
		shift += 7
	}
	return 0, 0, fmt.Errorf("%w: varint continuation past end of buffer", fault.ErrTruncatedBuffer)
}
