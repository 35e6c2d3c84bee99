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

// Package readio feeds reads (and, for paired runs, read pairs) into
// the classification pipeline. Its Scanner is grounded on
// encoding/fastq/scanner.go's bufio.Scanner-backed four-line reader;
// PairRecord additionally carries the barcode/UMI segments the
// --read-format DSL (spec.md 6) extracts.
package readio

// Record is one FASTQ read: an id, sequence, and quality string. The
// "+" comment line the original keeps as Unk is dropped -- the
// classifier never reads it and the result writer never emits it.
type Record struct {
	ID, Seq, Qual string
}

// PairRecord is one unit of work handed to the classifier: a read (or
// a mate pair), plus whatever barcode/UMI segments --read-format
// carved out of it (spec.md 6).
type PairRecord struct {
	R1, R2       *Record
	Barcode, UMI string
}

// Feeder supplies batches of records to the pipeline. NextBatch fills
// as many of buf's slots as the underlying stream has left (up to
// len(buf)) and returns the count; n < len(buf) together with a nil
// err means the stream is exhausted after this batch. Grounded on
// fastq.Scanner's Scan-in-a-loop idiom, batched instead of per-record.
type Feeder interface {
	NextBatch(buf []PairRecord) (n int, err error)
}
