// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/horizcoin/horizcoind/fault"
)

func TestErrorClasses(t *testing.T) {
	if !fault.IsErrInvalid(fault.ErrInvalidSignature) {
		t.Errorf("ErrInvalidSignature is not InvalidError")
	}
	if !fault.IsErrProcess(fault.ErrTruncatedBuffer) {
		t.Errorf("ErrTruncatedBuffer is not ProcessError")
	}
	if !fault.IsErrStorage(fault.ErrIncompatibleBatch) {
		t.Errorf("ErrIncompatibleBatch is not StorageError")
	}
	if !fault.IsErrNotFound(fault.ErrNotFound) {
		t.Errorf("ErrNotFound is not NotFoundError")
	}
	if fault.IsErrInvalid(fault.ErrTruncatedBuffer) {
		t.Errorf("ErrTruncatedBuffer must not be InvalidError")
	}
}

func TestWrappedComparison(t *testing.T) {
	err := fmt.Errorf("input 3: %w", fault.ErrInvalidSignature)
	if !errors.Is(err, fault.ErrInvalidSignature) {
		t.Errorf("wrapped error does not match sentinel")
	}
	if errors.Is(err, fault.ErrDuplicateInput) {
		t.Errorf("wrapped error matches the wrong sentinel")
	}
}
