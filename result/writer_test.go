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

package result

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skchronicles/centrifuger/classify"
	"github.com/skchronicles/centrifuger/readio"
)

func TestTSVWriterHeaderNoBarcodeOrUMI(t *testing.T) {
	var buf bytes.Buffer
	w := NewTSVWriter(&buf, false, false)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Flush())
	assert.Equal(t, "readID\tseqID\ttaxID\tscore\t2ndBestScore\thitLength\tqueryLength\tnumMatches\n", buf.String())
}

func TestTSVWriterHeaderWithBarcodeAndUMI(t *testing.T) {
	var buf bytes.Buffer
	w := NewTSVWriter(&buf, true, true)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Flush())
	assert.Contains(t, buf.String(), "\tbarcode\tUMI\n")
}

func TestTSVWriterUnclassifiedRow(t *testing.T) {
	var buf bytes.Buffer
	w := NewTSVWriter(&buf, false, false)
	require.NoError(t, w.Write("read1", "", "", classify.Result{QueryLength: 8}, nil))
	require.NoError(t, w.Flush())
	assert.Equal(t, "read1\tunclassified\t0\t0\t0\t0\t8\t1\n", buf.String())
}

func TestTSVWriterClassifiedRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewTSVWriter(&buf, false, false)
	res := classify.Result{
		Score:          25,
		SecondaryScore: 0,
		BestMatchCount: 2,
		HitLength:      8,
		QueryLength:    8,
		SeqHits: []classify.SeqTaxon{
			{SeqID: 0, TaxID: 100},
			{SeqID: 1, TaxID: 200},
		},
	}
	require.NoError(t, w.Write("read1", "", "", res, nil))
	require.NoError(t, w.Flush())
	assert.Equal(t,
		"read1\t0\t100\t25\t0\t8\t8\t2\n"+
			"read1\t1\t200\t25\t0\t8\t8\t2\n",
		buf.String())
}

func TestPipelineSinkUsesRecordIDAndBarcode(t *testing.T) {
	var buf bytes.Buffer
	sink := &PipelineSink{Writer: NewTSVWriter(&buf, true, false)}
	rec := readio.PairRecord{R1: &readio.Record{ID: "read7"}, Barcode: "AACC"}
	require.NoError(t, sink.Emit(rec, classify.Result{QueryLength: 4}))
	w := sink.Writer.(*TSVWriter)
	require.NoError(t, w.Flush())
	assert.Equal(t, "read7\tunclassified\t0\t0\t0\t0\t4\t1\tAACC\n", buf.String())
}
