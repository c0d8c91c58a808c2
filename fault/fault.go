// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
// with errors.Is; detail may be added by wrapping with fmt.Errorf
// and the %w verb.
package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StorageError GenericError

// common errors - keep in alphabetic order
var (
	ErrDuplicateInput          = InvalidError("duplicate transaction input")
	ErrDuplicateTransaction    = InvalidError("duplicate transaction in block")
	ErrEmptyMerkleTree         = InvalidError("merkle tree has no leaves")
	ErrIncompatibleBatch       = StorageError("batch belongs to a different storage backend")
	ErrInvalidAddress          = InvalidError("address is invalid")
	ErrInvalidAddressLength    = InvalidError("address payload length is invalid")
	ErrInvalidAddressPrefix    = InvalidError("address prefix is invalid")
	ErrInvalidDigestLength     = InvalidError("digest length is invalid")
	ErrInvalidPrivateKey       = InvalidError("private key is invalid")
	ErrInvalidPublicKey        = InvalidError("public key is invalid")
	ErrInvalidSignature        = InvalidError("invalid signature")
	ErrKeyCountMismatch        = InvalidError("one private key per input is required")
	ErrLeafIndexOutOfRange     = InvalidError("merkle leaf index is out of range")
	ErrMemoTooLong             = InvalidError("memo exceeds maximum byte length")
	ErrMerkleRootMismatch      = InvalidError("merkle root does not match transactions")
	ErrMissingInputs           = InvalidError("transaction has no inputs")
	ErrMissingOutputs          = InvalidError("transaction has no outputs")
	ErrNotFound                = NotFoundError("record was not found")
	ErrTimestampTooFarInFuture = InvalidError("block timestamp is too far in the future")
	ErrTimestampTooFarInPast   = InvalidError("block timestamp is too far in the past")
	ErrTrailingBytes           = ProcessError("unexpected trailing bytes")
	ErrTruncatedBuffer         = ProcessError("buffer is truncated")
	ErrVarintOverflow          = ProcessError("varint exceeds 64 bits")
	ErrZeroOutputAmount        = InvalidError("output amount must not be zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e StorageError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrStorage(e error) bool  { _, ok := e.(StorageError); return ok }
