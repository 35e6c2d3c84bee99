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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("bc:0:16,um:16:26,r1:26:-1")
	require.NoError(t, err)
	require.Len(t, f, 3)
	assert.Equal(t, Slice{Segment: SegBC, Start: 0, End: 16}, f[0])
	assert.Equal(t, Slice{Segment: SegUM, Start: 16, End: 26}, f[1])
	assert.Equal(t, Slice{Segment: SegR1, Start: 26, End: -1}, f[2])
}

func TestParseFormatEmpty(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestParseFormatRejectsMalformed(t *testing.T) {
	_, err := ParseFormat("bc:0")
	assert.Error(t, err)

	_, err = ParseFormat("xy:0:1")
	assert.Error(t, err)

	_, err = ParseFormat("bc:x:1")
	assert.Error(t, err)
}

func TestFormatApplySplitsBarcodeAndUMI(t *testing.T) {
	f, err := ParseFormat("bc:0:16,um:16:26,r1:26:-1")
	require.NoError(t, err)

	rec := PairRecord{R1: &Record{ID: "read1", Seq: "AAAAAAAAAAAAAAAACCCCCCCCCCGGGGTTTT", Qual: strRepeat("I", 34)}}
	out := f.Apply(rec)

	assert.Equal(t, "AAAAAAAAAAAAAAAA", out.Barcode)
	assert.Equal(t, "CCCCCCCCCC", out.UMI)
	assert.Equal(t, "GGGGTTTT", out.R1.Seq)
}

func TestFormatApplyNoOpWhenEmpty(t *testing.T) {
	var f Format
	rec := PairRecord{R1: &Record{ID: "read1", Seq: "ACGT", Qual: "IIII"}}
	out := f.Apply(rec)
	assert.Equal(t, rec, out)
}

func strRepeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
