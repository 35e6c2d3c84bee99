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

package pipeline

import (
	"github.com/skchronicles/centrifuger/classify"
	"github.com/skchronicles/centrifuger/readio"
)

// runSerial is the T<=7 topology: the caller's goroutine does input
// and output itself; only classification fans out across workers
// goroutines, joined before the batch's results are emitted.
func runSerial(feeder readio.Feeder, classifier *classify.Classifier, sink Sink, workers, batchSize int) error {
	batch := getBatch(batchSize)
	defer putBatch(batch)

	for {
		n, err := feeder.NextBatch(batch)
		if n > 0 {
			results := classifyBatch(classifier, batch, n, workers)
			if emitErr := emitBatch(sink, batch, results, n); emitErr != nil {
				return emitErr
			}
		}
		if err != nil {
			return err
		}
		if n < len(batch) {
			return nil
		}
	}
}
