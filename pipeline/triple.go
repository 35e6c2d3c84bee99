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

// runTripleBuffer is the T>=13 topology: three batch buffers. Each
// iteration starts input on the next buffer and classification on the
// current buffer concurrently, while emitting the previous iteration's
// already-classified batch -- three stages in flight at once. Output
// order across the stream equals input order because batch k's results
// are always emitted before batch k+1's classification is joined
// (spec.md 4.7).
func runTripleBuffer(feeder readio.Feeder, classifier *classify.Classifier, sink Sink, workers, batchSize int) error {
	var buffers [3][]readio.PairRecord
	for i := range buffers {
		buffers[i] = getBatch(batchSize)
		defer putBatch(buffers[i])
	}

	type fillResult struct {
		n   int
		err error
	}

	var sizes [3]int
	var feedErr error
	sizes[0], feedErr = feeder.NextBatch(buffers[0])
	if sizes[0] == 0 {
		return feedErr
	}

	prevTag := -1
	var prevResults []classify.Result
	prevSize := 0

	tag := 0
	for {
		nextTag := (tag + 1) % 3

		var inputCh chan fillResult
		if sizes[tag] > 0 && feedErr == nil {
			inputCh = make(chan fillResult, 1)
			go func(buf []readio.PairRecord) {
				n, err := feeder.NextBatch(buf)
				inputCh <- fillResult{n, err}
			}(buffers[nextTag])
		}

		var classifyCh chan []classify.Result
		if sizes[tag] > 0 {
			classifyCh = make(chan []classify.Result, 1)
			go func(buf []readio.PairRecord, n int) {
				classifyCh <- classifyBatch(classifier, buf, n, workers)
			}(buffers[tag], sizes[tag])
		}

		if prevTag >= 0 {
			if err := emitBatch(sink, buffers[prevTag], prevResults, prevSize); err != nil {
				return err
			}
		}

		var tagResults []classify.Result
		if classifyCh != nil {
			tagResults = <-classifyCh
		}

		nextSize := 0
		if inputCh != nil {
			fr := <-inputCh
			nextSize = fr.n
			if fr.err != nil {
				feedErr = fr.err
			}
		}

		prevTag, prevResults, prevSize = tag, tagResults, sizes[tag]

		if sizes[tag] == 0 {
			return feedErr
		}

		sizes[nextTag] = nextSize
		tag = nextTag
	}
}
