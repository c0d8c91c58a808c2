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

// Reader - sequential decoder over a byte buffer
//
// each accessor consumes bytes from the front; the first error is
// returned by every accessor so unpack routines can check once at the
// end via Done
type Reader struct {
	buffer []byte
	offset int
	err    error
}

// NewReader - wrap a buffer for sequential decoding
func NewReader(buffer []byte) *Reader {
	return &Reader{buffer: buffer}
}

// Remaining - number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.offset
}

// Consumed - number of bytes read so far
func (r *Reader) Consumed() int {
	return r.offset
}

// Err - first error encountered, if any
func (r *Reader) Err() error {
	return r.err
}

// Done - check that the buffer was fully consumed without error
func (r *Reader) Done() error {
	if r.err != nil {
		return r.err
	}
	if r.Remaining() != 0 {
		return fmt.Errorf("%w: %d bytes remain", fault.ErrTrailingBytes, r.Remaining())
	}
	return nil
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.Remaining() < n {
		r.err = fmt.Errorf("%w: need %d bytes, have %d", fault.ErrTruncatedBuffer, n, r.Remaining())
		return nil
	}
	data := r.buffer[r.offset : r.offset+n]
	r.offset += n
	return data
}

// Uint32 - read a 4 byte little endian value
func (r *Reader) Uint32() uint32 {
	data := r.take(4)
	if data == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(data)
}

// Uint64 - read an 8 byte little endian value
func (r *Reader) Uint64() uint64 {
	data := r.take(8)
	if data == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(data)
}

// Varint64 - read a varint encoded value
func (r *Reader) Varint64() uint64 {
	if r.err != nil {
		return 0
	}
	value, count, err := FromVarint64(r.buffer[r.offset:])
	if err != nil {
		r.err = err
		return 0
	}
	r.offset += count
	return value
}

// CompactUint64 - read a compact encoded amount
func (r *Reader) CompactUint64() uint64 {
	if r.err != nil {
		return 0
	}
	value, count, err := FromCompactUint64(r.buffer[r.offset:])
	if err != nil {
		r.err = err
		return 0
	}
	r.offset += count
	return value
}

// Bytes - read a varint byte count followed by that many bytes
//
// returns a copy so the result is safe after the source buffer is
// reused
func (r *Reader) Bytes() []byte {
	length := r.Varint64()
	if r.err != nil {
		return nil
	}
	if length > uint64(r.Remaining()) {
		r.err = fmt.Errorf("%w: declared %d bytes, have %d", fault.ErrTruncatedBuffer, length, r.Remaining())
		return nil
	}
	data := r.take(int(length))
	if data == nil {
		return nil
	}
	result := make([]byte, length)
	copy(result, data)
	return result
}

// String - read a varint byte count followed by UTF-8 bytes
func (r *Reader) String() string {
	return string(r.Bytes())
}

// FixedBytes - read exactly n bytes
func (r *Reader) FixedBytes(n int) []byte {
	return r.take(n)
}
