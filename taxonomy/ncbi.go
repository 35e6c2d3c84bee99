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

package taxonomy

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/store/llrb"
	"github.com/grailbio/base/errors"
)

// taxIDNode implements llrb.Comparable so the original-taxid -> compact-id
// assignment table built while reading nodes.dmp can use an ordered
// integer-keyed tree, the way the pack's other biogo/store consumers
// (kortschak-ins' use of modernc.org/kv, grailbio-bio's general
// preference for ordered containers over ad hoc maps) favor over a bare
// Go map when the keys are later walked in order.
type taxIDNode struct {
	taxID     uint64
	compactID uint64
}

func (n *taxIDNode) Compare(b llrb.Comparable) int {
	other := b.(*taxIDNode)
	switch {
	case n.taxID < other.taxID:
		return -1
	case n.taxID > other.taxID:
		return 1
	default:
		return 0
	}
}

// compactIDTable assigns dense compact ids to NCBI taxids in first-seen
// order, backed by an LLRB tree for the lookup, mirroring
// Taxonomy.hpp::CompactTaxonomyId.
type compactIDTable struct {
	tree   *llrb.Tree
	origID []uint64
}

func newCompactIDTable() *compactIDTable {
	return &compactIDTable{tree: &llrb.Tree{}}
}

// idFor returns taxID's compact id, assigning a new dense id the first
// time taxID is seen.
func (c *compactIDTable) idFor(taxID uint64) uint64 {
	key := &taxIDNode{taxID: taxID}
	if got := c.tree.Get(key); got != nil {
		return got.(*taxIDNode).compactID
	}
	compactID := uint64(len(c.origID))
	c.tree.Insert(&taxIDNode{taxID: taxID, compactID: compactID})
	c.origID = append(c.origID, taxID)
	return compactID
}

// LoadNCBI builds a Taxonomy from the original NCBI nodes.dmp/names.dmp
// text dumps, grounded on
// Taxonomy.hpp::CompactTaxonomyId/ReadTaxonomyTree/ReadTaxonomyName. It
// is meant for test fixtures and for rebuilding a .2.cfr from scratch;
// the hot classification path only ever uses Load.
func LoadNCBI(nodes, names io.Reader) (*Taxonomy, error) {
	ids := newCompactIDTable()

	type parsedNode struct {
		taxID, parentTaxID uint64
		rank               Rank
	}
	var parsed []parsedNode

	sc := bufio.NewScanner(nodes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitDumpLine(line)
		if len(fields) < 3 {
			return nil, taxonomyIOErr("malformed nodes.dmp line: %q", line)
		}
		taxID, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, taxonomyIOErr("bad taxid in nodes.dmp: %q", fields[0])
		}
		parentTaxID, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, taxonomyIOErr("bad parent taxid in nodes.dmp: %q", fields[1])
		}
		parsed = append(parsed, parsedNode{
			taxID:       taxID,
			parentTaxID: parentTaxID,
			rank:        ParseRank(fields[2]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.E(errors.Invalid, "taxonomy: reading nodes.dmp", err)
	}

	for _, p := range parsed {
		ids.idFor(p.taxID)
		ids.idFor(p.parentTaxID)
	}

	tree := make([]node, len(ids.origID))
	for i := range tree {
		tree[i].leaf = true
	}
	for _, p := range parsed {
		ctid := ids.idFor(p.taxID)
		pctid := ids.idFor(p.parentTaxID)
		tree[ctid] = node{parent: pctid, rank: p.rank, leaf: tree[ctid].leaf}
		if ctid != pctid {
			tree[pctid].leaf = false
		}
	}

	nameOf := make([]string, len(ids.origID))
	sc = bufio.NewScanner(names)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || !strings.Contains(line, "scientific name") {
			continue
		}
		fields := splitDumpLine(line)
		if len(fields) < 2 {
			continue
		}
		taxID, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		ctid := ids.idFor(taxID)
		nameOf[ctid] = fields[1]
	}
	if err := sc.Err(); err != nil {
		return nil, errors.E(errors.Invalid, "taxonomy: reading names.dmp", err)
	}

	return &Taxonomy{tree: tree, names: nameOf, origID: ids.origID}, nil
}

// splitDumpLine splits a "|"-delimited, tab/space-padded NCBI dump line
// (e.g. "2\t|\t131567\t|\tsuperkingdom\t|") into trimmed fields.
func splitDumpLine(line string) []string {
	raw := strings.Split(line, "|")
	fields := make([]string, 0, len(raw))
	for _, f := range raw {
		f = strings.TrimSpace(f)
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
