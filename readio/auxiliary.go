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

package readio

import (
	"io"

	"github.com/grailbio/base/errors"
)

// auxiliaryFeeder wraps a base Feeder with up to two auxiliary FASTQ
// streams (--barcode, --UMI) whose Seq field becomes the barcode/UMI
// of the matching record. The orchestrator guarantees batch-size
// equality across all four streams; unequal counts are fatal (spec.md
// 6's Feeder interface note).
type auxiliaryFeeder struct {
	inner   Feeder
	barcode *fastqScanner
	umi     *fastqScanner
}

// NewAuxiliaryFeeder wraps inner so every batch's records also carry a
// barcode and/or UMI read from separate FASTQ streams; either may be
// nil to skip that stream.
func NewAuxiliaryFeeder(inner Feeder, barcode, umi io.Reader) Feeder {
	f := &auxiliaryFeeder{inner: inner}
	if barcode != nil {
		f.barcode = newFastqScanner(barcode)
	}
	if umi != nil {
		f.umi = newFastqScanner(umi)
	}
	return f
}

func (f *auxiliaryFeeder) NextBatch(buf []PairRecord) (int, error) {
	n, err := f.inner.NextBatch(buf)
	for i := 0; i < n; i++ {
		if f.barcode != nil {
			var rec Record
			if !f.barcode.scan(&rec) {
				return n, mateMismatch("barcode", f.barcode.Err())
			}
			buf[i].Barcode = rec.Seq
		}
		if f.umi != nil {
			var rec Record
			if !f.umi.scan(&rec) {
				return n, mateMismatch("UMI", f.umi.Err())
			}
			buf[i].UMI = rec.Seq
		}
	}
	return n, err
}

func mateMismatch(stream string, cause error) error {
	if cause == nil {
		return errors.E(errors.Invalid, "readio: "+stream+" stream ran short of the primary read stream")
	}
	return errors.E(errors.Invalid, "readio: "+stream+" stream: "+cause.Error())
}
