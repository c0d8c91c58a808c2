// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Horizcoin Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle builds SHA-256 merkle trees over leaf digests and
// produces per-leaf inclusion proofs.
//
// Levels are built bottom-up: adjacent nodes are concatenated and
// digested; an odd trailing node is paired with itself, never
// promoted unchanged.
//
// Empty-leaf policy for the whole system: NewTree rejects an empty
// leaf set, and RootOf - the entry point used wherever a leaf list
// may legitimately be empty, such as block construction - defines the
// root of zero leaves as SHA-256 of the empty byte string. No caller
// may use any other empty-tree convention.
package merkle

import (
	"fmt"

	"github.com/horizcoin/horizcoind/digest"
	"github.com/horizcoin/horizcoind/fault"
)

// Tree - an immutable merkle tree
//
// level 0 holds the leaves as supplied (without duplication); the
// last level holds only the root
type Tree struct {
	levels [][]digest.Digest
}

// NewTree - build a tree from leaf digests
//
// fails on an empty leaf set; use RootOf where empty input is valid
func NewTree(leaves []digest.Digest) (*Tree, error) {
	if 0 == len(leaves) {
		return nil, fault.ErrEmptyMerkleTree
	}

	level := make([]digest.Digest, len(leaves))
	copy(level, leaves)

	levels := [][]digest.Digest{level}
	for len(level) > 1 {
		level = nextLevel(level)
		levels = append(levels, level)
	}

	return &Tree{levels: levels}, nil
}

// pair adjacent nodes, duplicating an odd trailing node
func nextLevel(level []digest.Digest) []digest.Digest {
	parents := make([]digest.Digest, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		j := i + 1
		if j == len(level) {
			j = i // compensate for odd number
		}
		parents = append(parents, digest.NewDigest(append(level[i][:], level[j][:]...)))
	}
	return parents
}

// Root - the precomputed top digest
func (tree *Tree) Root() digest.Digest {
	top := tree.levels[len(tree.levels)-1]
	return top[0]
}

// LeafCount - number of leaves the tree was built from
func (tree *Tree) LeafCount() int {
	return len(tree.levels[0])
}

// Leaves - copy of the leaf level
func (tree *Tree) Leaves() []digest.Digest {
	leaves := make([]digest.Digest, len(tree.levels[0]))
	copy(leaves, tree.levels[0])
	return leaves
}

// Proof - build the inclusion proof for one leaf
//
// walks from the leaf level to the root recording the sibling needed
// at each level; a node without a sibling is paired with itself
func (tree *Tree) Proof(leafIndex int) (Proof, error) {
	if leafIndex < 0 || leafIndex >= tree.LeafCount() {
		return Proof{}, fmt.Errorf("%w: index %d of %d leaves", fault.ErrLeafIndexOutOfRange, leafIndex, tree.LeafCount())
	}

	path := make([]digest.Digest, 0, len(tree.levels)-1)
	index := leafIndex
	for _, level := range tree.levels[:len(tree.levels)-1] {
		sibling := index ^ 1
		if sibling >= len(level) {
			sibling = index // odd trailing node pairs with itself
		}
		path = append(path, level[sibling])
		index /= 2
	}

	return Proof{
		Leaf:      tree.levels[0][leafIndex],
		LeafIndex: leafIndex,
		Path:      path,
		TreeSize:  tree.LeafCount(),
	}, nil
}

// RootOf - merkle root of a possibly empty leaf list
//
// the system-wide convention for zero leaves is the digest of the
// empty byte string
func RootOf(leaves []digest.Digest) digest.Digest {
	if 0 == len(leaves) {
		return EmptyRoot()
	}
	level := make([]digest.Digest, len(leaves))
	copy(level, leaves)
	for len(level) > 1 {
		level = nextLevel(level)
	}
	return level[0]
}

// EmptyRoot - the root assigned to an empty leaf list
func EmptyRoot() digest.Digest {
	return digest.NewDigest(nil)
}
