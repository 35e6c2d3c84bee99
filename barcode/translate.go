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
	"bufio"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
)

// Translator renames already-whitelist-corrected barcodes (e.g.
// between two 10x chemistry barcode spaces), per --barcode-translate.
type Translator struct {
	table map[string]string
}

// NewTranslator builds a Translator from a two-column
// "from<TAB>to" file.
func NewTranslator(r io.Reader) (*Translator, error) {
	t := &Translator{table: map[string]string{}}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 2 {
			return nil, errors.E(errors.Invalid, "barcode: malformed translate line %q, want from<TAB>to", line)
		}
		t.table[cols[0]] = cols[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Translate returns bc's mapped barcode, or bc unchanged if the table
// has no entry for it.
func (t *Translator) Translate(bc string) string {
	if mapped, ok := t.table[bc]; ok {
		return mapped
	}
	return bc
}
