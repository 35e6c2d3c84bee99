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

// SeqCatalogue is the frozen reference catalogue of spec.md 3: sequence
// id -> length, loaded from the .3.cfr sibling file.
type SeqCatalogue map[uint64]uint64

// LoadCatalogue reads the .3.cfr stream of (seqId, length) pairs until
// EOF, per spec.md 6.
func LoadCatalogue(r io.Reader) (SeqCatalogue, error) {
	cat := SeqCatalogue{}
	for {
		seqID, err := cfrio.ReadU64(r)
		if err == io.EOF {
			return cat, nil
		}
		if err != nil {
			return nil, corruptIndexErr("reading catalogue seqID: %v", err)
		}
		length, err := cfrio.ReadU64(r)
		if err != nil {
			return nil, corruptIndexErr("reading catalogue length for seq %d: %v", seqID, err)
		}
		cat[seqID] = length
	}
}

// SaveCatalogue is the encoder counterpart used by fixture tests.
func SaveCatalogue(w io.Writer, cat SeqCatalogue) error {
	for seqID, length := range cat {
		if err := cfrio.WriteU64(w, seqID); err != nil {
			return err
		}
		if err := cfrio.WriteU64(w, length); err != nil {
			return err
		}
	}
	return nil
}
