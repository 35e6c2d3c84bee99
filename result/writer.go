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

// Package result serializes classify.Result values as the tab-
// separated report spec.md 6 names. Grounded on ResultWriter.hpp: one
// row per tied-best sequence hit, or a single "unclassified" row when
// a read matched nothing.
package result

import (
	"bufio"
	"fmt"
	"io"

	"github.com/skchronicles/centrifuger/classify"
)

// Writer emits classification rows for a stream of reads.
type Writer interface {
	WriteHeader() error
	Write(readID, barcode, umi string, r classify.Result, seqName func(seqID uint64) string) error
}

// TSVWriter is the tab-separated Writer grounded on
// ResultWriter.hpp::OutputHeader/Output.
type TSVWriter struct {
	w                  *bufio.Writer
	hasBarcode, hasUMI bool
}

// NewTSVWriter wraps w, buffering writes the way every cmd/bio-*
// binary in the pack buffers stdout before a batch of record writes.
func NewTSVWriter(w io.Writer, hasBarcode, hasUMI bool) *TSVWriter {
	return &TSVWriter{w: bufio.NewWriter(w), hasBarcode: hasBarcode, hasUMI: hasUMI}
}

// WriteHeader writes the column header line.
func (t *TSVWriter) WriteHeader() error {
	if _, err := io.WriteString(t.w, "readID\tseqID\ttaxID\tscore\t2ndBestScore\thitLength\tqueryLength\tnumMatches"); err != nil {
		return err
	}
	if t.hasBarcode {
		if _, err := io.WriteString(t.w, "\tbarcode"); err != nil {
			return err
		}
	}
	if t.hasUMI {
		if _, err := io.WriteString(t.w, "\tUMI"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(t.w, "\n")
	return err
}

// Write emits one or more rows for a single read's result: one row per
// tied-best sequence hit, or exactly one "unclassified" row
// (seqID=unclassified, taxID=0, all scores 0, numMatches=1) when the
// read matched nothing, per spec.md 6.
func (t *TSVWriter) Write(readID, barcode, umi string, r classify.Result, seqName func(seqID uint64) string) error {
	if r.Unclassified() {
		return t.writeRow(readID, "unclassified", 0, 0, 0, r.HitLength, r.QueryLength, 1, barcode, umi)
	}
	for _, hit := range r.SeqHits {
		name := fmt.Sprintf("%d", hit.SeqID)
		if seqName != nil {
			if n := seqName(hit.SeqID); n != "" {
				name = n
			}
		}
		if err := t.writeRow(readID, name, hit.TaxID, r.Score, r.SecondaryScore, r.HitLength, r.QueryLength, r.BestMatchCount, barcode, umi); err != nil {
			return err
		}
	}
	return nil
}

func (t *TSVWriter) writeRow(readID, seqName string, taxID, score, secondary uint64, hitLen, queryLen, numMatches int, barcode, umi string) error {
	if _, err := fmt.Fprintf(t.w, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d", readID, seqName, taxID, score, secondary, hitLen, queryLen, numMatches); err != nil {
		return err
	}
	if t.hasBarcode {
		if _, err := fmt.Fprintf(t.w, "\t%s", barcode); err != nil {
			return err
		}
	}
	if t.hasUMI {
		if _, err := fmt.Fprintf(t.w, "\t%s", umi); err != nil {
			return err
		}
	}
	_, err := io.WriteString(t.w, "\n")
	return err
}

// Flush must be called once after the last Write to drain the
// underlying bufio.Writer.
func (t *TSVWriter) Flush() error { return t.w.Flush() }
