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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skchronicles/centrifuger/classify"
	"github.com/skchronicles/centrifuger/fmindex"
	"github.com/skchronicles/centrifuger/pipeline"
	"github.com/skchronicles/centrifuger/readio"
	"github.com/skchronicles/centrifuger/result"
	"github.com/skchronicles/centrifuger/taxonomy"
)

// writeIndex serializes the two-toy-reference fixture to prefix.1.cfr/
// .2.cfr/.3.cfr, grounded on the temp-dir-and-compare pattern
// cmd/bio-fusion/fusion_e2e_test.go uses for its golden-file checks.
func writeIndex(t *testing.T, prefix string) {
	t.Helper()

	fm := fmindex.BuildFixture([]fmindex.FixtureSequence{
		{SeqID: 0, Bases: "ACGTACGTACGTACGT"},
		{SeqID: 1, Bases: "ACGTACGTAAAACGTA"},
	}, 4)
	f1, err := os.Create(prefix + ".1.cfr")
	require.NoError(t, err)
	require.NoError(t, fm.Save(f1))
	require.NoError(t, f1.Close())

	f3, err := os.Create(prefix + ".3.cfr")
	require.NoError(t, err)
	require.NoError(t, fmindex.SaveCatalogue(f3, fmindex.SeqCatalogue{0: 16, 1: 16}))
	require.NoError(t, f3.Close())

	nodes := strings.NewReader("1\t|\t1\t|\tlife\t|\n100\t|\t1\t|\tspecies\t|\n200\t|\t1\t|\tspecies\t|\n")
	names := strings.NewReader(
		"1\t|\troot\t|\t\t|\tscientific name\t|\n" +
			"100\t|\tS0\t|\t\t|\tscientific name\t|\n" +
			"200\t|\tS1\t|\t\t|\tscientific name\t|\n",
	)
	tax, err := taxonomy.LoadNCBI(nodes, names)
	require.NoError(t, err)
	f2, err := os.Create(prefix + ".2.cfr")
	require.NoError(t, err)
	require.NoError(t, tax.Save(f2))
	require.NoError(t, f2.Close())
}

// TestEndToEndClassifyAndWrite runs the full input->classify->output
// path (readio feeder, classify.Classifier, pipeline.Run,
// result.TSVWriter) over the spec.md 8 toy scenario, bypassing only
// the CLI's flag parsing.
func TestEndToEndClassifyAndWrite(t *testing.T) {
	dir := testutil.GetTmpDir()
	prefix := filepath.Join(dir, "toy")
	writeIndex(t, prefix)

	params := classify.Params{
		MaxResult:         2,
		MinHitLen:         8,
		ScoreHitLenAdjust: 3,
		SeqTaxon:          map[uint64]uint64{0: 100, 1: 200},
	}
	classifier, err := classify.New(prefix, params)
	require.NoError(t, err)

	reads := "@read1\nACGTACGT\n+\nIIIIIIII\n@read2\nAAAACGTA\n+\nIIIIIIII\n"
	feeder := readio.NewSingleEndFeeder(strings.NewReader(reads))

	var out bytes.Buffer
	writer := result.NewTSVWriter(&out, false, false)
	require.NoError(t, writer.WriteHeader())
	sink := &result.PipelineSink{Writer: writer}

	err = pipeline.Run(feeder, classifier, sink, pipeline.Params{Threads: 1})
	require.NoError(t, err)
	require.NoError(t, writer.Flush())

	got := out.String()
	assert.Contains(t, got, "readID\tseqID\ttaxID\tscore\t2ndBestScore\thitLength\tqueryLength\tnumMatches\n")
	assert.Contains(t, got, "read1\t0\t100\t25\t0\t8\t8\t2\n")
	assert.Contains(t, got, "read1\t1\t200\t25\t0\t8\t8\t2\n")
	assert.Contains(t, got, "read2\t1\t200\t25\t0\t8\t8\t1\n")
}
