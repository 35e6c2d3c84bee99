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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skchronicles/centrifuger/fmindex"
	"github.com/skchronicles/centrifuger/seq"
)

// toyClassifier builds the two-reference scenario of spec.md 8:
// S0 = "ACGTACGTACGTACGT" (taxon 100), S1 = "ACGTACGTAAAACGTA" (taxon
// 200), minHitLen = 8, C = 3 (replacing the production default of 15
// for this tiny example), maxResult = 2.
func toyClassifier(t *testing.T) *Classifier {
	t.Helper()
	fm := fmindex.BuildFixture([]fmindex.FixtureSequence{
		{SeqID: 0, Bases: "ACGTACGTACGTACGT"},
		{SeqID: 1, Bases: "ACGTACGTAAAACGTA"},
	}, 4)
	cat := fmindex.SeqCatalogue{0: 16, 1: 16}
	params := Params{
		MaxResult:         2,
		MinHitLen:         8,
		HitkFactor:        0,
		ScoreHitLenAdjust: 3,
		SeqTaxon:          map[uint64]uint64{0: 100, 1: 200},
	}
	return NewFromParts(fm, nil, cat, params)
}

func TestQueryTiedAcrossBothReferences(t *testing.T) {
	c := toyClassifier(t)
	r := c.Query([]byte("ACGTACGT"), nil)

	assert.EqualValues(t, 25, r.Score) // (8-3)^2
	assert.Equal(t, 2, r.BestMatchCount)
	require.Len(t, r.SeqHits, 2)
	assert.Equal(t, SeqTaxon{SeqID: 0, TaxID: 100}, r.SeqHits[0])
	assert.Equal(t, SeqTaxon{SeqID: 1, TaxID: 200}, r.SeqHits[1])
}

func TestQuerySingleReference(t *testing.T) {
	c := toyClassifier(t)
	r := c.Query([]byte("AAAACGTA"), nil)

	assert.EqualValues(t, 25, r.Score)
	assert.EqualValues(t, 0, r.SecondaryScore)
	require.Len(t, r.SeqHits, 1)
	assert.Equal(t, SeqTaxon{SeqID: 1, TaxID: 200}, r.SeqHits[0])
}

func TestQueryUnclassified(t *testing.T) {
	c := toyClassifier(t)
	r := c.Query([]byte("NNNNNNNN"), nil)

	assert.True(t, r.Unclassified())
	assert.EqualValues(t, 0, r.Score)
	assert.Empty(t, r.SeqHits)
}

func TestQueryRevcompInvariant(t *testing.T) {
	c := toyClassifier(t)
	want := c.Query([]byte("ACGTACGT"), nil)
	rc := make([]byte, 8)
	seq.ReverseComplement(rc, []byte("ACGTACGT"))
	got := c.Query(rc, nil)

	assert.Equal(t, want.Score, got.Score)
	assert.Equal(t, want.SecondaryScore, got.SecondaryScore)
	assert.ElementsMatch(t, want.SeqHits, got.SeqHits)
}

func TestQueryPairedReads(t *testing.T) {
	c := toyClassifier(t)
	r := c.Query([]byte("ACGTACGTAAAA"), []byte("TTTTACGTACGT"))

	require.Len(t, r.SeqHits, 1)
	assert.Equal(t, SeqTaxon{SeqID: 1, TaxID: 200}, r.SeqHits[0])
}

// TestQueryInvariants asserts the quantified properties of spec.md 8
// across a small pool of reads.
func TestQueryInvariants(t *testing.T) {
	c := toyClassifier(t)
	reads := []string{
		"ACGTACGT",
		"AAAACGTA",
		"NNNNNNNN",
		"CGTACGTA",
		"TACGTACG",
	}

	for _, r := range reads {
		res := c.Query([]byte(r), nil)

		if res.Score == 0 {
			assert.Empty(t, res.SeqHits, "unclassified read %q must have no hits", r)
		} else {
			assert.NotEmpty(t, res.SeqHits, "classified read %q must have at least one hit", r)
		}

		rc := make([]byte, len(r))
		seq.ReverseComplement(rc, []byte(r))
		symRes := c.Query(rc, nil)
		assert.Equal(t, res.Score, symRes.Score, "strand symmetry for %q", r)
		assert.Equal(t, res.SecondaryScore, symRes.SecondaryScore, "strand symmetry for %q", r)
		assert.ElementsMatch(t, res.SeqHits, symRes.SeqHits, "strand symmetry for %q", r)

		// Determinism: repeated queries against the same index are
		// byte-identical.
		again := c.Query([]byte(r), nil)
		assert.Equal(t, res, again, "determinism for %q", r)
	}
}

func TestQueryPairedSymmetry(t *testing.T) {
	c := toyClassifier(t)
	r1, r2 := []byte("ACGTACGTAAAA"), []byte("TTTTACGTACGT")

	rc1 := make([]byte, len(r1))
	seq.ReverseComplement(rc1, r1)
	rc2 := make([]byte, len(r2))
	seq.ReverseComplement(rc2, r2)

	fwd := c.Query(r1, r2)
	swapped := c.Query(rc2, rc1)

	assert.Equal(t, fwd.Score, swapped.Score)
}
