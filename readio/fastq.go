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
	"bufio"
	"io"

	"github.com/grailbio/base/errors"
)

var (
	errShort   = errors.E(errors.Invalid, "readio: truncated FASTQ record")
	errInvalid = errors.E(errors.Invalid, "readio: malformed FASTQ record")
)

// fastqScanner reads one FASTQ stream's four-line records, following
// encoding/fastq.Scanner's validation (ID line starts with "@", the
// third line starts with "+") without its Field bitset -- this reader
// always fills ID/Seq/Qual, the only fields the classifier and the
// result writer use.
type fastqScanner struct {
	b   *bufio.Scanner
	err error
}

func newFastqScanner(r io.Reader) *fastqScanner {
	return &fastqScanner{b: bufio.NewScanner(r)}
}

func (f *fastqScanner) scanLine() (string, bool) {
	if !f.b.Scan() {
		if f.err = f.b.Err(); f.err == nil {
			f.err = io.EOF
		}
		return "", false
	}
	return f.b.Text(), true
}

// scan reads one record into rec. It returns false at end of stream
// (Err() == nil) or on malformed input (Err() != nil).
func (f *fastqScanner) scan(rec *Record) bool {
	if f.err != nil {
		return false
	}
	id, ok := f.scanLine()
	if !ok {
		return false
	}
	if len(id) == 0 || id[0] != '@' {
		f.err = errInvalid
		return false
	}
	rec.ID = id[1:]

	seq, ok := f.scanLine()
	if !ok {
		if f.err == io.EOF {
			f.err = errShort
		}
		return false
	}
	rec.Seq = seq

	plus, ok := f.scanLine()
	if !ok {
		if f.err == io.EOF {
			f.err = errShort
		}
		return false
	}
	if len(plus) == 0 || plus[0] != '+' {
		f.err = errInvalid
		return false
	}

	qual, ok := f.scanLine()
	if !ok {
		if f.err == io.EOF {
			f.err = errShort
		}
		return false
	}
	rec.Qual = qual
	return true
}

// Err returns the terminal error, nil at a clean end of stream.
func (f *fastqScanner) Err() error {
	if f.err == io.EOF {
		return nil
	}
	return f.err
}

// singleEndFeeder feeds one FASTQ stream as single-end records.
type singleEndFeeder struct {
	s *fastqScanner
}

// NewSingleEndFeeder wraps a FASTQ stream (the -u flag, spec.md 6) as
// a Feeder.
func NewSingleEndFeeder(r io.Reader) Feeder {
	return &singleEndFeeder{s: newFastqScanner(r)}
}

func (f *singleEndFeeder) NextBatch(buf []PairRecord) (int, error) {
	n := 0
	for n < len(buf) {
		rec := &Record{}
		if !f.s.scan(rec) {
			return n, f.s.Err()
		}
		buf[n] = PairRecord{R1: rec}
		n++
	}
	return n, nil
}

// pairedFeeder feeds two FASTQ streams (-1/-2, spec.md 6) as read
// pairs, grounded on fastq.PairScanner's discordance check.
type pairedFeeder struct {
	r1, r2 *fastqScanner
}

// NewPairedFeeder wraps two mate FASTQ streams as a Feeder.
func NewPairedFeeder(r1, r2 io.Reader) Feeder {
	return &pairedFeeder{r1: newFastqScanner(r1), r2: newFastqScanner(r2)}
}

func (f *pairedFeeder) NextBatch(buf []PairRecord) (int, error) {
	n := 0
	for n < len(buf) {
		rec1, rec2 := &Record{}, &Record{}
		ok1 := f.r1.scan(rec1)
		ok2 := f.r2.scan(rec2)
		if ok1 != ok2 {
			return n, errors.E(errors.Invalid, "readio: mate files have different read counts")
		}
		if !ok1 {
			if err := f.r1.Err(); err != nil {
				return n, err
			}
			return n, f.r2.Err()
		}
		buf[n] = PairRecord{R1: rec1, R2: rec2}
		n++
	}
	return n, nil
}
