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

// Package fmindex implements the FM-index backward-search and sampled
// suffix-array lookup that the classifier core queries on every read: a
// BWT of the concatenated reference catalogue, its C-array, and a
// periodically sampled suffix array recovered by LF-stepping. See
// Classifier.hpp/FMIndex usage in the original Centrifuger source and the
// "hybrid" bit layout named there.
package fmindex

import (
	"io"

	"github.com/skchronicles/centrifuger/seq"
)

// BackwardSearcher is the narrow capability the classifier core needs
// from an FM-index. Exposing it as an interface (rather than a concrete
// struct) lets a second backing be selected at Load time from the file
// header without inheritance, per spec.md 9 "tagged variants, not
// inheritance".
type BackwardSearcher interface {
	// BackwardSearch extends the BWT interval [*sp,*ep] leftward using
	// the rightmost length bases of pattern, stopping at the first
	// non-ACGT base or empty interval. It returns the number of bases
	// matched and leaves *sp,*ep at the interval of the matched suffix.
	BackwardSearch(pattern []byte, length int, sp, ep *uint64) int
	// BackwardToSampledSA LF-steps back from a BWT row to the nearest
	// sampled suffix-array entry and returns the reference sequence id
	// it belongs to, plus the number of LF steps taken.
	BackwardToSampledSA(pos uint64) (seqID uint64, offsetWalked uint64)
	// Len returns the BWT length (total reference bases plus one
	// separator per reference).
	Len() uint64
}

// saSample is one stored suffix-array entry: the reference sequence and
// local offset the sampled row's suffix begins at.
type saSample struct {
	seqID  uint64
	offset uint64
}

// Index is the hybrid-bit-layout FM-index backing (the "Hybrid" in the
// original's Sequence_Hybrid). It satisfies BackwardSearcher.
type Index struct {
	bwt     *hybridBWT
	cArray  [alphabetSize]uint64 // count of symbols lexicographically smaller
	period  uint64               // SA sampling period r
	samples []saSample           // one entry per r-th BWT row
}

var _ BackwardSearcher = (*Index)(nil)

// Len implements BackwardSearcher.
func (ix *Index) Len() uint64 { return ix.bwt.n }

// lf computes the LF-mapping of row i: the row whose suffix is the
// symbol at row i prepended to the suffix at row i (i.e. SA[LF(i)] =
// SA[i]-1). This is the standard FM-index backward-stepping primitive
// used both by BackwardSearch and by BackwardToSampledSA.
func (ix *Index) lf(i uint64) uint64 {
	s := ix.bwt.at(i)
	return ix.cArray[s] + ix.bwt.rank(s, i)
}

// BackwardSearch implements BackwardSearcher. Caller initializes *sp,*ep
// to the full range [0, n-1] before calling; see spec.md 4.1.
func (ix *Index) BackwardSearch(pattern []byte, length int, sp, ep *uint64) int {
	matched := 0
	for matched < length {
		base := pattern[length-1-matched]
		code := seq.Encode(base)
		if code == seq.CodeInvalid {
			break
		}
		s := symbol(code) + 1 // seq.Code A=0..T=3 -> symbol A=1..T=4 (sentinel=0)
		newSp := ix.cArray[s] + ix.bwt.rank(s, *sp)
		newEp := ix.cArray[s] + ix.bwt.rank(s, *ep+1) - 1
		if newEp < newSp {
			break
		}
		*sp, *ep = newSp, newEp
		matched++
	}
	return matched
}

// BackwardToSampledSA implements BackwardSearcher.
func (ix *Index) BackwardToSampledSA(pos uint64) (seqID uint64, offsetWalked uint64) {
	row := pos
	var steps uint64
	for row%ix.period != 0 {
		row = ix.lf(row)
		steps++
	}
	s := ix.samples[row/ix.period]
	return s.seqID, steps
}

// Load reads a serialized FM-index from r. It fails with a CorruptIndex
// error (via github.com/grailbio/base/errors, kind Invalid) on a
// size/field mismatch; see the .1.cfr layout in spec.md 6.
func Load(r io.Reader) (*Index, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	bwtSyms, err := readBWT(r, hdr.n)
	if err != nil {
		return nil, err
	}
	cArray, err := readCArray(r)
	if err != nil {
		return nil, err
	}
	samples, err := readSamples(r, hdr.n, hdr.period)
	if err != nil {
		return nil, err
	}
	return &Index{
		bwt:     newHybridBWT(bwtSyms),
		cArray:  cArray,
		period:  hdr.period,
		samples: samples,
	}, nil
}
