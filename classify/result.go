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

// SeqTaxon pairs a reference sequence id with its taxon id, one entry
// per member of the tied-best set (spec.md 3).
type SeqTaxon struct {
	SeqID uint64
	TaxID uint64
}

// Result is a read's classification: both Score and SecondaryScore are
// uint64 (the original source mixes size_t and int for these two
// fields -- spec.md 9 open question 2 -- resolved here by using uint64
// for both everywhere).
type Result struct {
	Score          uint64
	SecondaryScore uint64
	BestMatchCount int
	SeqHits        []SeqTaxon
	HitLength      int
	QueryLength    int
}

// Unclassified reports whether the read matched nothing at minHitLen
// (spec.md 4.5 ambiguity policy).
func (r Result) Unclassified() bool { return r.Score == 0 }
