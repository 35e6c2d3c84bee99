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

// Package seq holds small nucleotide-sequence helpers shared by the
// classifier core: reverse-complement and base-code translation.
package seq

import "github.com/grailbio/base/simd"

// complementTable maps an ASCII base to its complement; anything outside
// {A,C,G,T} (upper or lower case) becomes 'N', matching Classifier.hpp's
// _compChar table.
var complementTable = [256]byte{}

func init() {
	for i := range complementTable {
		complementTable[i] = 'N'
	}
	complementTable['A'] = 'T'
	complementTable['C'] = 'G'
	complementTable['G'] = 'C'
	complementTable['T'] = 'A'
	complementTable['a'] = 'T'
	complementTable['c'] = 'G'
	complementTable['g'] = 'C'
	complementTable['t'] = 'A'
}

// ReverseComplement writes the reverse complement of src into dst. It
// panics if len(dst) != len(src). Grounded on biosimd.ReverseComp2's
// split "reverse the bytes, then transform each one" shape: the byte
// reversal is done by simd.Reverse8 (the ASCII alphabet, unlike
// biosimd's packed 2-bit ACGT encoding, can't use a plain XOR for the
// complement step, so a table lookup replaces XorConst8Inplace there).
func ReverseComplement(dst, src []byte) {
	n := len(src)
	if len(dst) != n {
		panic("seq.ReverseComplement: len(dst) != len(src)")
	}
	simd.Reverse8(dst, src)
	for i := range dst {
		dst[i] = complementTable[dst[i]]
	}
}

// ReverseComplementString is a string convenience wrapper around
// ReverseComplement.
func ReverseComplementString(s string) string {
	b := make([]byte, len(s))
	ReverseComplement(b, []byte(s))
	return string(b)
}

// Code is the 2-bit encoding of a base used by the FM-index alphabet,
// A=0 C=1 G=2 T=3, with 4 reserved for the separator sentinel.
type Code uint8

const (
	CodeA Code = iota
	CodeC
	CodeG
	CodeT
	CodeSentinel
	// CodeInvalid marks a non-ACGT base (N and friends); backward search
	// terminates immediately on it per spec.md 4.1.
	CodeInvalid Code = 0xff
)

var baseToCode = [256]Code{}

func init() {
	for i := range baseToCode {
		baseToCode[i] = CodeInvalid
	}
	baseToCode['A'], baseToCode['a'] = CodeA, CodeA
	baseToCode['C'], baseToCode['c'] = CodeC, CodeC
	baseToCode['G'], baseToCode['g'] = CodeG, CodeG
	baseToCode['T'], baseToCode['t'] = CodeT, CodeT
}

// Encode returns the 2-bit code for an ASCII base, or CodeInvalid.
func Encode(b byte) Code { return baseToCode[b] }

// Decode is the inverse of Encode for the four real bases.
func Decode(c Code) byte {
	switch c {
	case CodeA:
		return 'A'
	case CodeC:
		return 'C'
	case CodeG:
		return 'G'
	case CodeT:
		return 'T'
	default:
		return '$'
	}
}
