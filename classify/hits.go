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

import "github.com/skchronicles/centrifuger/fmindex"

// getHitsFromRead performs the greedy longest-suffix decomposition of
// spec.md 4.3: starting from the right end of read, call BackwardSearch
// on the remaining prefix; if the match is at least minHitLen, record
// it; then skip leftward by l+1 bases (l matched bases plus the
// mismatching base that stopped the extension) and repeat while at
// least minHitLen bases remain. Grounded on
// Classifier.hpp::GetHitsFromRead.
func getHitsFromRead(fm fmindex.BackwardSearcher, read []byte, minHitLen int) []Hit {
	var hits []Hit
	remaining := len(read)
	for remaining >= minHitLen {
		sp, ep := uint64(0), fm.Len()-1
		l := fm.BackwardSearch(read[:remaining], remaining, &sp, &ep)
		if l >= minHitLen {
			hits = append(hits, Hit{SP: sp, EP: ep, L: l})
		}
		remaining -= l + 1
	}
	return hits
}
