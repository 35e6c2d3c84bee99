// Copyright 2026 The Centrifuger Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package taxonomy holds the compact taxonomic tree the classifier uses
// for rank-aware ancestor queries: a flat array of (parent, rank, leaf)
// records indexed by compact id, grounded on the original's Taxonomy.hpp.
package taxonomy

import (
	"io"

	"github.com/skchronicles/centrifuger/internal/cfrio"
)

// node is one taxonomy tree entry. No pointers between nodes -- ancestor
// walks are index chases into the flat tree array, per spec.md 9 "no
// cyclic ownership".
type node struct {
	parent uint64
	rank   Rank
	leaf   bool
}

// Taxonomy is the compact, read-only taxonomic tree loaded from a
// .2.cfr file. The zero value is not usable; construct with Load or
// LoadNCBI.
type Taxonomy struct {
	tree    []node
	names   []string
	origID  []uint64 // compact id -> original NCBI taxid
}

// Load reads the compact id table, parent/rank table, and name table
// from a .2.cfr file per spec.md 6.
func Load(r io.Reader) (*Taxonomy, error) {
	count, err := cfrio.ReadU64(r)
	if err != nil {
		return nil, taxonomyIOErr("reading node count: %v", err)
	}

	tree := make([]node, count)
	for i := range tree {
		parent, err := cfrio.ReadU64(r)
		if err != nil {
			return nil, taxonomyIOErr("reading node[%d].parent: %v", i, err)
		}
		rankByte, err := cfrio.ReadU8(r)
		if err != nil {
			return nil, taxonomyIOErr("reading node[%d].rank: %v", i, err)
		}
		leafByte, err := cfrio.ReadU8(r)
		if err != nil {
			return nil, taxonomyIOErr("reading node[%d].leaf: %v", i, err)
		}
		tree[i] = node{parent: parent, rank: Rank(rankByte), leaf: leafByte != 0}
	}

	names := make([]string, count)
	for i := range names {
		name, err := cfrio.ReadLengthPrefixedString(r)
		if err != nil {
			return nil, taxonomyIOErr("reading name[%d]: %v", i, err)
		}
		names[i] = name
	}

	origID := make([]uint64, count)
	for i := range origID {
		id, err := cfrio.ReadU64(r)
		if err != nil {
			return nil, taxonomyIOErr("reading origTaxId[%d]: %v", i, err)
		}
		origID[i] = id
	}

	return &Taxonomy{tree: tree, names: names, origID: origID}, nil
}

// Save is the encoder counterpart to Load, used by tests and by
// LoadNCBI-based index-building tools to freeze a compiled taxonomy.
func (t *Taxonomy) Save(w io.Writer) error {
	if err := cfrio.WriteU64(w, uint64(len(t.tree))); err != nil {
		return err
	}
	for _, n := range t.tree {
		if err := cfrio.WriteU64(w, n.parent); err != nil {
			return err
		}
		leaf := uint8(0)
		if n.leaf {
			leaf = 1
		}
		if err := cfrio.WriteU8(w, uint8(n.rank)); err != nil {
			return err
		}
		if err := cfrio.WriteU8(w, leaf); err != nil {
			return err
		}
	}
	for _, name := range t.names {
		if err := cfrio.WriteLengthPrefixedString(w, name); err != nil {
			return err
		}
	}
	for _, id := range t.origID {
		if err := cfrio.WriteU64(w, id); err != nil {
			return err
		}
	}
	return nil
}

// NodeCount returns the number of compact ids in the tree.
func (t *Taxonomy) NodeCount() int { return len(t.tree) }

// OriginalID recovers the original NCBI taxid for a compact id.
func (t *Taxonomy) OriginalID(compactID uint64) uint64 { return t.origID[compactID] }

// Name returns the compact id's scientific name.
func (t *Taxonomy) Name(compactID uint64) string { return t.names[compactID] }

// Parent returns compactID's parent compact id (the root is its own
// parent, per spec.md 3).
func (t *Taxonomy) Parent(compactID uint64) uint64 { return t.tree[compactID].parent }

// NodeRank returns compactID's rank tag.
func (t *Taxonomy) NodeRank(compactID uint64) Rank { return t.tree[compactID].rank }

// IsLeaf reports whether compactID has no children.
func (t *Taxonomy) IsLeaf(compactID uint64) bool { return t.tree[compactID].leaf }

// AncestorAtRank climbs parents from compactID until a node with rank
// `at` is found, or returns 0 if climbing passes above `at` in the
// reduced rank order without a hit. Per spec.md 4.2.
func (t *Taxonomy) AncestorAtRank(compactID uint64, at Rank) uint64 {
	atOrder := at.order()
	cur := compactID
	for {
		n := t.tree[cur]
		if n.rank == at {
			return cur
		}
		if n.rank.order() > atOrder {
			return 0
		}
		if n.parent == cur {
			// Reached the root without finding `at`.
			return 0
		}
		cur = n.parent
	}
}

// LCA returns the lowest common ancestor of a and b via the classical
// two-pointer ancestor walk: climb the deeper-ranked node up one step
// at a time until both sides meet.
func (t *Taxonomy) LCA(a, b uint64) uint64 {
	depthA := t.depth(a)
	depthB := t.depth(b)
	for depthA > depthB {
		a = t.tree[a].parent
		depthA--
	}
	for depthB > depthA {
		b = t.tree[b].parent
		depthB--
	}
	for a != b {
		pa, pb := t.tree[a].parent, t.tree[b].parent
		if pa == a && pb == b {
			// Both already at (possibly different) roots with no
			// common ancestor below; return the root we ended on.
			return a
		}
		a, b = pa, pb
	}
	return a
}

// depth counts the number of parent hops from compactID up to the root.
func (t *Taxonomy) depth(compactID uint64) int {
	d := 0
	cur := compactID
	for {
		p := t.tree[cur].parent
		if p == cur {
			return d
		}
		cur = p
		d++
	}
}
