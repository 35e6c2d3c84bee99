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

// runDoubleBuffer is the 8<=T<=12 topology: two batch buffers [0],[1].
// While classify workers process tag, a single input goroutine fills
// 1-tag. After both join, the caller writes results for tag in-order
// and the roles swap (spec.md 4.7).
func runDoubleBuffer(feeder readio.Feeder, classifier *classify.Classifier, sink Sink, workers, batchSize int) error {
	var buffers [2][]readio.PairRecord
	buffers[0] = getBatch(batchSize)
	buffers[1] = getBatch(batchSize)
	defer putBatch(buffers[0])
	defer putBatch(buffers[1])

	type fillResult struct {
		n   int
		err error
	}

	var sizes [2]int
	var pendingErr error
	sizes[0], pendingErr = feeder.NextBatch(buffers[0])
	inputDone := pendingErr != nil || sizes[0] < len(buffers[0])

	tag := 0
	for {
		nextTag := 1 - tag

		var fillCh chan fillResult
		if !inputDone {
			fillCh = make(chan fillResult, 1)
			go func(buf []readio.PairRecord) {
				n, err := feeder.NextBatch(buf)
				fillCh <- fillResult{n, err}
			}(buffers[nextTag])
		}

		results := classifyBatch(classifier, buffers[tag], sizes[tag], workers)

		fillErr := pendingErr
		pendingErr = nil
		if fillCh != nil {
			fr := <-fillCh
			sizes[nextTag] = fr.n
			fillErr = fr.err
			inputDone = fillErr != nil || sizes[nextTag] < len(buffers[nextTag])
		}

		if err := emitBatch(sink, buffers[tag], results, sizes[tag]); err != nil {
			return err
		}
		if fillErr != nil {
			return fillErr
		}
		if fillCh == nil {
			return nil
		}
		tag = nextTag
	}
}
