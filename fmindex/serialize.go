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
	"io"

	"github.com/skchronicles/centrifuger/internal/cfrio"
)

// indexMagic identifies a .1.cfr file; indexVersion is bumped whenever
// the on-disk layout changes incompatibly.
const (
	indexMagic   uint32 = 0x43465231 // "CFR1"
	indexVersion uint32 = 1
)

type fileHeader struct {
	n      uint64
	period uint64
}

func readHeader(r io.Reader) (fileHeader, error) {
	magic, err := cfrio.ReadU32(r)
	if err != nil {
		return fileHeader{}, corruptIndexErr("reading magic: %v", err)
	}
	if magic != indexMagic {
		return fileHeader{}, corruptIndexErr("bad magic %#x", magic)
	}
	version, err := cfrio.ReadU32(r)
	if err != nil {
		return fileHeader{}, corruptIndexErr("reading version: %v", err)
	}
	if version != indexVersion {
		return fileHeader{}, corruptIndexErr("unsupported version %d", version)
	}
	alphaSize, err := cfrio.ReadU8(r)
	if err != nil {
		return fileHeader{}, corruptIndexErr("reading alphabet size: %v", err)
	}
	if alphaSize != alphabetSize {
		return fileHeader{}, corruptIndexErr("unexpected alphabet size %d", alphaSize)
	}
	n, err := cfrio.ReadU64(r)
	if err != nil {
		return fileHeader{}, corruptIndexErr("reading BWT length: %v", err)
	}
	period, err := cfrio.ReadU64(r)
	if err != nil {
		return fileHeader{}, corruptIndexErr("reading SA sampling period: %v", err)
	}
	if period == 0 {
		return fileHeader{}, corruptIndexErr("SA sampling period must be > 0")
	}
	return fileHeader{n: n, period: period}, nil
}

func writeHeader(w io.Writer, h fileHeader) error {
	if err := cfrio.WriteU32(w, indexMagic); err != nil {
		return err
	}
	if err := cfrio.WriteU32(w, indexVersion); err != nil {
		return err
	}
	if err := cfrio.WriteU8(w, alphabetSize); err != nil {
		return err
	}
	if err := cfrio.WriteU64(w, h.n); err != nil {
		return err
	}
	return cfrio.WriteU64(w, h.period)
}

// readBWT decodes the hybrid-encoded BWT bitmap: n 3-bit symbol codes,
// one byte per symbol on disk for simplicity (the in-memory hybridBWT
// repacks them into the succinct 3-bit layout).
func readBWT(r io.Reader, n uint64) ([]symbol, error) {
	syms := make([]symbol, n)
	for i := range syms {
		b, err := cfrio.ReadU8(r)
		if err != nil {
			return nil, corruptIndexErr("reading BWT symbol %d: %v", i, err)
		}
		if b >= alphabetSize {
			return nil, corruptIndexErr("BWT symbol %d out of range: %d", i, b)
		}
		syms[i] = symbol(b)
	}
	return syms, nil
}

func writeBWT(w io.Writer, syms []symbol) error {
	for _, s := range syms {
		if err := cfrio.WriteU8(w, uint8(s)); err != nil {
			return err
		}
	}
	return nil
}

func readCArray(r io.Reader) ([alphabetSize]uint64, error) {
	var c [alphabetSize]uint64
	for i := range c {
		v, err := cfrio.ReadU64(r)
		if err != nil {
			return c, corruptIndexErr("reading C-array[%d]: %v", i, err)
		}
		c[i] = v
	}
	return c, nil
}

func writeCArray(w io.Writer, c [alphabetSize]uint64) error {
	for _, v := range c {
		if err := cfrio.WriteU64(w, v); err != nil {
			return err
		}
	}
	return nil
}

func readSamples(r io.Reader, n, period uint64) ([]saSample, error) {
	count := int(n/period) + 1
	samples := make([]saSample, count)
	for i := range samples {
		seqID, err := cfrio.ReadU64(r)
		if err != nil {
			return nil, corruptIndexErr("reading sample[%d].seqID: %v", i, err)
		}
		offset, err := cfrio.ReadU64(r)
		if err != nil {
			return nil, corruptIndexErr("reading sample[%d].offset: %v", i, err)
		}
		samples[i] = saSample{seqID: seqID, offset: offset}
	}
	return samples, nil
}

func writeSamples(w io.Writer, samples []saSample) error {
	for _, s := range samples {
		if err := cfrio.WriteU64(w, s.seqID); err != nil {
			return err
		}
		if err := cfrio.WriteU64(w, s.offset); err != nil {
			return err
		}
	}
	return nil
}

// Save serializes the index in the .1.cfr layout described in spec.md 6.
// Index construction proper is out of scope (spec.md 1); Save exists so
// tests can round-trip a small fixture index through Load.
func (ix *Index) Save(w io.Writer) error {
	if err := writeHeader(w, fileHeader{n: ix.bwt.n, period: ix.period}); err != nil {
		return err
	}
	syms := make([]symbol, ix.bwt.n)
	for i := range syms {
		syms[i] = ix.bwt.at(uint64(i))
	}
	if err := writeBWT(w, syms); err != nil {
		return err
	}
	if err := writeCArray(w, ix.cArray); err != nil {
		return err
	}
	return writeSamples(w, ix.samples)
}
