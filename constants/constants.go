// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package constants - protocol constants shared across the ledger
// engine
package constants

// transaction limits
const (
	// MaxMemoLength - maximum memo size in UTF-8 bytes
	MaxMemoLength = 128
)

// block timestamp tolerances in seconds
//
// defaults for block.Validator; individual validators may be
// configured with different windows
const (
	BlockTimestampFutureSkew uint64 = 120
	BlockTimestampPastSkew   uint64 = 24 * 60 * 60
)

// chain parameters
const (
	// GenesisTimestamp - 2022-01-01 00:00:00 UTC
	GenesisTimestamp uint64 = 1640995200

	// TargetBlockTime - seconds between blocks aimed for by miners
	TargetBlockTime uint64 = 60

	// InitialBlockReward - coinbase amount in the smallest unit
	InitialBlockReward uint64 = 1000000
)
