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

package classify

import (
	"github.com/skchronicles/centrifuger/fmindex"
	"github.com/skchronicles/centrifuger/internal/cfrio"
	"github.com/skchronicles/centrifuger/taxonomy"
)

// Params is the fixed configuration Classifier.Query is run under
// (spec.md 4.6). There is no package-level global state; Params flows
// explicitly from the caller into New.
type Params struct {
	// MaxResult caps the number of entries in the emitted tied-best
	// list (default 1).
	MaxResult int
	// MinHitLen is the minimum hit length the hit finder accepts
	// (default 22).
	MinHitLen int
	// HitkFactor bounds the number of SA positions resolved per hit at
	// HitkFactor*MaxResult; 0 means unlimited (default 40).
	HitkFactor int
	// CollapseToRank is accepted but not yet applied: taxon-level LCA
	// collapse remains a stub, matching the original's "//TODO: LCA"
	// marker (spec.md 9 open question 4).
	CollapseToRank taxonomy.Rank
	// ScoreHitLenAdjust is C in s(l) = (l-C)^2 (spec.md 4.5); 0 means
	// use the default of 15. Tests exercising small toy references
	// override this to a smaller value, per spec.md 8.
	ScoreHitLenAdjust int
	// SeqTaxon optionally maps a reference sequence id to its taxon id
	// for output; nil reports TaxID 0 for every hit. Production index
	// construction (out of scope per spec.md 1) is expected to supply
	// this alongside the frozen catalogue; the .1.cfr/.2.cfr/.3.cfr
	// triple spec.md 6 names does not itself carry this association.
	SeqTaxon map[uint64]uint64
}

// DefaultParams matches the original's _classifierParam defaults.
func DefaultParams() Params {
	return Params{
		MaxResult:         1,
		MinHitLen:         22,
		HitkFactor:        40,
		ScoreHitLenAdjust: defaultScoreHitLenAdjust,
	}
}

func (p Params) scoreHitLenAdjust() int {
	if p.ScoreHitLenAdjust == 0 {
		return defaultScoreHitLenAdjust
	}
	return p.ScoreHitLenAdjust
}

// Classifier is the C6 facade: it loads an index once and answers
// Query(r1, r2) on the hot path. Query allocates per call: the reverse
// complement buffers, the hit slices, the per-sequence score map, the
// resolved SA position lists and the result's tied list.
type Classifier struct {
	fm        *fmindex.Index
	taxonomy  *taxonomy.Taxonomy
	catalogue fmindex.SeqCatalogue
	params    Params
}

// New opens the three sibling files derived from indexPrefix
// (<prefix>.1.cfr, .2.cfr, .3.cfr) and returns a ready-to-query
// Classifier. Unlike the original, load failures are returned as errors
// rather than process-fatal; the caller (the CLI) is the one that
// decides to treat them as fatal, per spec.md 7.
func New(indexPrefix string, params Params) (*Classifier, error) {
	fm, err := loadFMIndex(indexPrefix + ".1.cfr")
	if err != nil {
		return nil, err
	}
	tax, err := loadTaxonomy(indexPrefix + ".2.cfr")
	if err != nil {
		return nil, err
	}
	cat, err := loadCatalogue(indexPrefix + ".3.cfr")
	if err != nil {
		return nil, err
	}
	return &Classifier{fm: fm, taxonomy: tax, catalogue: cat, params: params}, nil
}

func loadFMIndex(path string) (*fmindex.Index, error) {
	rc, err := cfrio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return fmindex.Load(rc)
}

func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	rc, err := cfrio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return taxonomy.Load(rc)
}

func loadCatalogue(path string) (fmindex.SeqCatalogue, error) {
	rc, err := cfrio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return fmindex.LoadCatalogue(rc)
}

// NewFromParts builds a Classifier directly from already-loaded
// components, bypassing file I/O; used by tests (e.g. the toy two-
// reference scenario in spec.md 8) and by tools that keep an index
// resident across multiple classification runs.
func NewFromParts(fm *fmindex.Index, tax *taxonomy.Taxonomy, cat fmindex.SeqCatalogue, params Params) *Classifier {
	return &Classifier{fm: fm, taxonomy: tax, catalogue: cat, params: params}
}

// SeqLength returns a reference sequence's catalogue length, if known.
// The .3.cfr catalogue carries only seqID->length (spec.md 3); it has
// no name field, so this does not resolve a display name (see
// cmd/centrifuger's output wiring for how the CLI fills that gap).
func (c *Classifier) SeqLength(seqID uint64) (length uint64, ok bool) {
	length, ok = c.catalogue[seqID]
	return
}

// Taxonomy exposes the loaded taxonomy for callers that need rank or
// name lookups beyond Query's result (e.g. the result writer resolving
// a display name).
func (c *Classifier) Taxonomy() *taxonomy.Taxonomy { return c.taxonomy }

// Query is the only hot path: it runs the strand/mate resolver (C4) on
// r1/r2, then aggregates the winning strand's hits into a Result (C5).
// r1 must be non-nil; r2 is nil for single-end reads.
func (c *Classifier) Query(r1, r2 []byte) Result {
	hits := searchForwardAndReverse(c.fm, r1, r2, c.params)
	result, _ := aggregate(c.fm, c.params.SeqTaxon, hits, c.params)
	result.QueryLength = len(r1)
	if r2 != nil {
		result.QueryLength += len(r2)
	}
	return result
}
