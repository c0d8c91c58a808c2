// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/horizcoin/horizcoind/fault"
)

// compact amount encoding in the minimal-size convention of
// UTXO-style ledgers
//
// a single byte for values below 0xfd, otherwise a marker byte
// followed by a fixed width little endian integer:
//   0xfd  16 bit
//   0xfe  32 bit
//   0xff  64 bit
const (
	compactUint16Marker = 0xfd
	compactUint32Marker = 0xfe
	compactUint64Marker = 0xff
)

// ToCompactUint64 - encode an amount in compact form
func ToCompactUint64(value uint64) []byte {
	switch {
	case value < compactUint16Marker:
		return []byte{byte(value)}
	case value <= 0xffff:
		result := make([]byte, 1, 3)
		result[0] = compactUint16Marker
		return binary.LittleEndian.AppendUint16(result, uint16(value))
	case value <= 0xffffffff:
		result := make([]byte, 1, 5)
		result[0] = compactUint32Marker
		return binary.LittleEndian.AppendUint32(result, uint32(value))
	default:
		result := make([]byte, 1, 9)
		result[0] = compactUint64Marker
		return binary.LittleEndian.AppendUint64(result, value)
	}
}

// FromCompactUint64 - decode a compact amount from the beginning of a
// buffer
//
// also returns the number of bytes used
func FromCompactUint64(buffer []byte) (uint64, int, error) {
	if 0 == len(buffer) {
		return 0, 0, fmt.Errorf("%w: empty compact amount", fault.ErrTruncatedBuffer)
	}

	switch buffer[0] {
	case compactUint16Marker:
		if len(buffer) < 3 {
			return 0, 0, fmt.Errorf("%w: compact amount needs 2 more bytes", fault.ErrTruncatedBuffer)
		}
		return uint64(binary.LittleEndian.Uint16(buffer[1:3])), 3, nil
	case compactUint32Marker:
		if len(buffer) < 5 {
			return 0, 0, fmt.Errorf("%w: compact amount needs 4 more bytes", fault.ErrTruncatedBuffer)
		}
		return uint64(binary.LittleEndian.Uint32(buffer[1:5])), 5, nil
	case compactUint64Marker:
		if len(buffer) < 9 {
			return 0, 0, fmt.Errorf("%w: compact amount needs 8 more bytes", fault.ErrTruncatedBuffer)
		}
		return binary.LittleEndian.Uint64(buffer[1:9]), 9, nil
	default:
		return uint64(buffer[0]), 1, nil
	}
}
