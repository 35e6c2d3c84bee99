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
	"github.com/skchronicles/centrifuger/classify"
	"github.com/skchronicles/centrifuger/readio"
)

// PipelineSink adapts a Writer to pipeline.Sink, so the orchestrator
// (which only knows about readio.PairRecord and classify.Result) can
// drive the TSV writer without importing it directly.
type PipelineSink struct {
	Writer  Writer
	SeqName func(seqID uint64) string
}

// Emit implements pipeline.Sink.
func (s *PipelineSink) Emit(rec readio.PairRecord, r classify.Result) error {
	readID := ""
	if rec.R1 != nil {
		readID = rec.R1.ID
	}
	return s.Writer.Write(readID, rec.Barcode, rec.UMI, r, s.SeqName)
}
