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

import "golang.org/x/sys/cpu"

// bwtBlockSize is the rank-checkpoint granularity (spec.md 4.1): a
// larger block trades checkpoint memory for more per-query linear
// scan work inside hybridBWT.rank. The block is 128 symbols where the
// CPU reports x86 POPCNT or ARM64 ASIMD and 64 otherwise (the scan
// itself does not use those instructions); probed once at package init
// rather than per query.
var bwtBlockSize = selectBlockSize()

func selectBlockSize() uint64 {
	if cpu.X86.HasPOPCNT || cpu.ARM64.HasASIMD {
		return 128
	}
	return 64
}
