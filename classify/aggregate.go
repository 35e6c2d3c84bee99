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
	"sort"

	"github.com/skchronicles/centrifuger/fmindex"
)

// aggregate turns a set of hits into a classification result: for every
// hit and every position in its BWT interval, resolve the owning
// sequence and add the hit's score to that sequence's accumulator (once
// per hit, however many of the hit's positions fall in the sequence),
// then select the best and the second-best distinct accumulator values.
//
// NOTE: a single hit awards its full score to *every* reference under
// its BWT interval, so a low-specificity seed (a large [sp,ep] interval)
// inflates the score of every sequence it touches. hitkFactor bounds the
// cost of this, not the score semantics -- this is preserved verbatim
// per spec.md 9 open question 1, not "fixed".
//
// Grounded on Classifier.hpp::GetClassificationFromHits; the original
// has no explicit return despite a non-void signature (spec.md 9 open
// question 3), resolved here by returning the pre-truncation tied-set
// size as the second value.
func aggregate(fm fmindex.BackwardSearcher, seqTaxon map[uint64]uint64, hits []Hit, params Params) (Result, int) {
	accum := map[uint64]uint64{}

	positionCap := 0
	if params.HitkFactor > 0 {
		positionCap = params.HitkFactor * params.MaxResult
	}
	c := params.scoreHitLenAdjust()

	for _, h := range hits {
		score := hitScore(h.L, c)
		credited := map[uint64]bool{}
		for _, j := range resolveHitPositions(h, positionCap) {
			seqID, _ := fm.BackwardToSampledSA(j)
			if credited[seqID] {
				continue
			}
			credited[seqID] = true
			accum[seqID] += score
		}
	}

	var best, second uint64
	for _, v := range accum {
		switch {
		case v > best:
			second = best
			best = v
		case v < best && v > second:
			second = v
		}
	}

	if best == 0 {
		return Result{HitLength: sumHitLengths(hits)}, 0
	}

	var tiedSeqIDs []uint64
	for seqID, v := range accum {
		if v == best {
			tiedSeqIDs = append(tiedSeqIDs, seqID)
		}
	}
	sort.Slice(tiedSeqIDs, func(i, j int) bool { return tiedSeqIDs[i] < tiedSeqIDs[j] })

	bestMatchCount := len(tiedSeqIDs)
	if params.MaxResult > 0 && len(tiedSeqIDs) > params.MaxResult {
		tiedSeqIDs = tiedSeqIDs[:params.MaxResult]
	}

	seqHits := make([]SeqTaxon, len(tiedSeqIDs))
	for i, id := range tiedSeqIDs {
		seqHits[i] = SeqTaxon{SeqID: id, TaxID: seqTaxon[id]}
	}

	return Result{
		Score:          best,
		SecondaryScore: second,
		BestMatchCount: bestMatchCount,
		SeqHits:        seqHits,
		HitLength:      sumHitLengths(hits),
	}, bestMatchCount
}

func sumHitLengths(hits []Hit) int {
	total := 0
	for _, h := range hits {
		total += h.L
	}
	return total
}

// resolveHitPositions returns the SA positions within hit's BWT interval
// to resolve, sampling evenly when the interval is larger than cap
// (cap<=0 means unlimited), per spec.md 4.5's hitkFactor truncation.
func resolveHitPositions(h Hit, cap int) []uint64 {
	size := h.EP - h.SP + 1
	if cap <= 0 || uint64(cap) >= size {
		positions := make([]uint64, size)
		for i := range positions {
			positions[i] = h.SP + uint64(i)
		}
		return positions
	}
	positions := make([]uint64, cap)
	step := float64(size) / float64(cap)
	for i := 0; i < cap; i++ {
		positions[i] = h.SP + uint64(float64(i)*step)
	}
	return positions
}
