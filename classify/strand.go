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
	"github.com/skchronicles/centrifuger/seq"
)

// defaultScoreHitLenAdjust is C in spec.md 4.5: s(l) = (l-C)^2.
const defaultScoreHitLenAdjust = 15

func hitScore(l, c int) uint64 {
	if l < c {
		// l is always >= minHitLen > C in practice (spec.md 4.5), but
		// guard the unsigned subtraction defensively for out-of-range
		// params.
		return 0
	}
	d := uint64(l - c)
	return d * d
}

func hitSetScore(hits []Hit, c int) uint64 {
	var total uint64
	for _, h := range hits {
		total += hitScore(h.L, c)
	}
	return total
}

// searchForwardAndReverse runs the hit finder on r1 and its reverse
// complement (and, for paired input, on r2/its reverse complement) into
// two strand-specific bags, scores each bag, and returns the winner.
// Convention: r1 and revcomp(r2) are the forward orientation; revcomp(r1)
// and r2 are the reverse orientation. On a tie the forward bag wins.
// Grounded on Classifier.hpp::SearchForwardAndReverse.
func searchForwardAndReverse(fm fmindex.BackwardSearcher, r1, r2 []byte, params Params) []Hit {
	minHitLen := params.MinHitLen
	c := params.scoreHitLenAdjust()

	rc1 := make([]byte, len(r1))
	seq.ReverseComplement(rc1, r1)

	forward := getHitsFromRead(fm, r1, minHitLen)
	reverse := getHitsFromRead(fm, rc1, minHitLen)

	if r2 != nil {
		rc2 := make([]byte, len(r2))
		seq.ReverseComplement(rc2, r2)
		forward = append(forward, getHitsFromRead(fm, rc2, minHitLen)...)
		reverse = append(reverse, getHitsFromRead(fm, r2, minHitLen)...)
	}

	if hitSetScore(forward, c) >= hitSetScore(reverse, c) {
		return forward
	}
	return reverse
}
