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

// Package classify holds the per-read classification core: the greedy
// hit finder (C3), the strand/mate resolver (C4), the hit aggregator
// (C5), and the Classifier facade (C6) that ties them to a loaded
// FM-index and taxonomy. Grounded on the original Classifier.hpp.
package classify

// Hit is a BWT interval [SP,EP] covering EP-SP+1 reference positions
// that all match a substring of length L of the read. Hits within a
// single read are non-overlapping by construction of the greedy
// decomposition (spec.md 3).
type Hit struct {
	SP, EP uint64
	L      int
}
