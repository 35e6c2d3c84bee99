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

package fmindex

import (
	"sort"

	"github.com/skchronicles/centrifuger/seq"
)

// FixtureSequence is one reference sequence fed to BuildFixture.
type FixtureSequence struct {
	SeqID uint64
	Bases string
}

// BuildFixture constructs a small in-memory Index over sequences by
// brute-force suffix sorting (O(n^2 log n)). Production index
// construction (BWT/SA-IS build, sampled SA layout) is out of scope per
// spec.md 1 -- this exists purely so tests can exercise Load/Query
// against a known, tiny reference set such as the two-toy-reference
// scenario in spec.md 8.
func BuildFixture(sequences []FixtureSequence, period uint64) *Index {
	var codes []symbol
	// refOf[globalPos] -> (seqID, offset within that sequence)
	type pos struct {
		seqID  uint64
		offset uint64
	}
	var refOf []pos
	for _, s := range sequences {
		for i := 0; i < len(s.Bases); i++ {
			c := seq.Encode(s.Bases[i])
			if c == seq.CodeInvalid {
				panic("fmindex.BuildFixture: non-ACGT base in fixture sequence")
			}
			codes = append(codes, symbol(c)+1)
			refOf = append(refOf, pos{s.SeqID, uint64(i)})
		}
		codes = append(codes, symSentinel)
		refOf = append(refOf, pos{s.SeqID, uint64(len(s.Bases))})
	}

	n := len(codes)
	sa := make([]uint64, n)
	for i := range sa {
		sa[i] = uint64(i)
	}
	sort.Slice(sa, func(a, b int) bool {
		i, j := int(sa[a]), int(sa[b])
		for i < n && j < n {
			if codes[i] != codes[j] {
				return codes[i] < codes[j]
			}
			i++
			j++
		}
		return i > j // the suffix that runs out first is the shorter (smaller) one
	})

	bwt := make([]symbol, n)
	for k, p := range sa {
		if p == 0 {
			bwt[k] = codes[n-1]
		} else {
			bwt[k] = codes[p-1]
		}
	}

	var cArray [alphabetSize]uint64
	for s := symbol(1); s < alphabetSize; s++ {
		cArray[s] = cArray[s-1] + countSymbol(codes, s-1)
	}

	numSamples := n/int(period) + 1
	samples := make([]saSample, numSamples)
	for k := 0; k < n; k += int(period) {
		p := refOf[sa[k]]
		samples[k/int(period)] = saSample{seqID: p.seqID, offset: p.offset}
	}

	return &Index{
		bwt:     newHybridBWT(bwt),
		cArray:  cArray,
		period:  period,
		samples: samples,
	}
}

func countSymbol(codes []symbol, s symbol) uint64 {
	var c uint64
	for _, v := range codes {
		if v == s {
			c++
		}
	}
	return c
}
