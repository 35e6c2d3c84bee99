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

package barcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitelistCorrectsKnownBarcode(t *testing.T) {
	w, err := NewWhitelist(strings.NewReader("AACCGGTT\nTTGGCCAA\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, "AACCGGTT", w.Correct("aaccggtt"))
}

func TestWhitelistRejectsUnknownBarcode(t *testing.T) {
	w, err := NewWhitelist(strings.NewReader("AACCGGTT\n"))
	require.NoError(t, err)
	assert.Equal(t, "N", w.Correct("GGGGGGGG"))
}

func TestWhitelistSkipsBlankLines(t *testing.T) {
	w, err := NewWhitelist(strings.NewReader("AACCGGTT\n\n\nTTGGCCAA\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, w.Len())
}

func TestTranslatorMapsKnownBarcode(t *testing.T) {
	tr, err := NewTranslator(strings.NewReader("AAAA\tCCCC\nGGGG\tTTTT\n"))
	require.NoError(t, err)
	assert.Equal(t, "CCCC", tr.Translate("AAAA"))
	assert.Equal(t, "TTTT", tr.Translate("TTTT")) // no entry -> unchanged
}

func TestTranslatorRejectsMalformedLine(t *testing.T) {
	_, err := NewTranslator(strings.NewReader("AAAA\n"))
	assert.Error(t, err)
}
