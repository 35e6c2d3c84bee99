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

// Symbol is the BWT's internal 3-bit alphabet code, distinct from
// seq.Code: the sentinel sorts lexicographically smallest, matching the
// canonical ordering {$,A,C,G,T} spec.md 3 asks for.
type symbol uint8

const (
	symSentinel symbol = iota
	symA
	symC
	symG
	symT
	alphabetSize = 5
)

// hybridBWT is the "hybrid" succinct bit-layout named in spec.md 4.1 and
// 9: symbols are packed 3 bits apiece into a flat []uint64 word array (no
// separate wavelet tree), and rank queries are answered by periodic
// checkpoints plus a symbol-by-symbol linear scan of the remainder of the
// block -- the same rank-block idiom biosimd's SIMD byte tables exist to
// accelerate, done here in plain Go with no popcount or cgo/asm backing.
type hybridBWT struct {
	n         uint64
	words     []uint64                // 3 bits/symbol, packed low-to-high
	blockSize uint64                   // checkpoint granularity
	blocks    [][alphabetSize]uint64   // cumulative counts *before* block start
}

func newHybridBWT(symbols []symbol) *hybridBWT {
	n := uint64(len(symbols))
	nWords := (n*3+63)/64 + 1 // +1 guards the final symbol's possible word spill
	numCheckpoints := int(n/bwtBlockSize) + 1
	b := &hybridBWT{
		n:         n,
		words:     make([]uint64, nWords),
		blockSize: bwtBlockSize,
		blocks:    make([][alphabetSize]uint64, numCheckpoints),
	}

	var running [alphabetSize]uint64
	for i, s := range symbols {
		if uint64(i)%bwtBlockSize == 0 {
			b.blocks[uint64(i)/bwtBlockSize] = running
		}
		b.set(uint64(i), s)
		running[s]++
	}
	if n%bwtBlockSize == 0 {
		b.blocks[numCheckpoints-1] = running
	}
	return b
}

func (b *hybridBWT) set(i uint64, s symbol) {
	bitPos := i * 3
	word := bitPos / 64
	off := bitPos % 64
	b.words[word] |= uint64(s) << off
	if off > 61 { // symbol straddles two words
		spill := 64 - off
		b.words[word+1] |= uint64(s) >> spill
	}
}

// at returns the symbol stored at BWT row i.
func (b *hybridBWT) at(i uint64) symbol {
	bitPos := i * 3
	word := bitPos / 64
	off := bitPos % 64
	v := b.words[word] >> off
	if off > 61 {
		spill := 64 - off
		v |= b.words[word+1] << spill
	}
	return symbol(v & 0x7)
}

// rank returns the number of occurrences of s in b[0:i) (i may equal n).
func (b *hybridBWT) rank(s symbol, i uint64) uint64 {
	block := i / b.blockSize
	cnt := b.blocks[block][s]
	for j := block * b.blockSize; j < i; j++ {
		if b.at(j) == s {
			cnt++
		}
	}
	return cnt
}
