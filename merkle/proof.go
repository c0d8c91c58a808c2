// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/horizcoin/horizcoind/digest"
)

// Proof - a self-contained inclusion proof
//
// carries everything needed to recompute a candidate root: the leaf,
// its index, the sibling path from leaf to root and the tree size at
// generation time
type Proof struct {
	Leaf      digest.Digest   `json:"leaf"`
	LeafIndex int             `json:"leafIndex"`
	Path      []digest.Digest `json:"path"`
	TreeSize  int             `json:"treeSize"`
}

// ComputeRoot - replay the concatenate-and-digest rule up the path
//
// an even index at a level means the current node is the left child,
// an odd index means it is the right child
func (proof Proof) ComputeRoot() digest.Digest {
	current := proof.Leaf
	index := proof.LeafIndex

	for _, sibling := range proof.Path {
		var combined [2 * digest.Length]byte
		if 0 == index%2 {
			copy(combined[:], current[:])
			copy(combined[digest.Length:], sibling[:])
		} else {
			copy(combined[:], sibling[:])
			copy(combined[digest.Length:], current[:])
		}
		current = digest.NewDigest(combined[:])
		index /= 2
	}
	return current
}

// Verify - check the proof against a known root
func (proof Proof) Verify(root digest.Digest) bool {
	return proof.ComputeRoot() == root
}
