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

// Package pipeline is the C7 orchestrator: it reads batches of paired
// reads, fans classification out across worker goroutines by static
// round-robin partitioning, and writes results back in input order.
// Unchanged from the original's three thread topologies (spec.md 4.7),
// but realized with goroutines and sync.WaitGroup fork/join barriers in
// the style of markduplicates/mark_duplicates.go's shard-worker loop,
// rather than raw pthread_create/pthread_join.
package pipeline

import (
	"sync"

	"github.com/grailbio/base/log"

	"github.com/skchronicles/centrifuger/classify"
	"github.com/skchronicles/centrifuger/readio"
)

// Topology names the pipeline depth chosen from the thread count
// (spec.md 4.7 table).
type Topology int

const (
	// Serial runs input, classify, and output all on the caller's
	// goroutine tree with no overlap: T <= 7.
	Serial Topology = iota
	// DoubleBuffer overlaps input of batch k+1 with classification of
	// batch k: 8 <= T <= 12.
	DoubleBuffer
	// TripleBuffer overlaps input, classify, and output across three
	// in-flight batches: T >= 13.
	TripleBuffer
)

func (t Topology) String() string {
	switch t {
	case Serial:
		return "serial"
	case DoubleBuffer:
		return "double-buffer"
	case TripleBuffer:
		return "triple-buffer"
	default:
		return "unknown"
	}
}

// ChooseTopology maps a total thread count to a topology and the number
// of classify workers it leaves for the hot path, per spec.md 4.7's
// table.
func ChooseTopology(threads int) (Topology, int) {
	switch {
	case threads <= 7:
		return Serial, max1(threads)
	case threads <= 12:
		return DoubleBuffer, threads - 1
	default:
		return TripleBuffer, threads - 2
	}
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// batchPool recycles []readio.PairRecord slices across batches,
// grounded on encoding/bam's record-pooling idiom: a batch buffer is a
// once-per-run allocation reused for the lifetime of the pipeline
// rather than a per-record one (spec.md 5 "Memory ownership").
var batchPool = sync.Pool{
	New: func() interface{} {
		return make([]readio.PairRecord, 0, 1024)
	},
}

func getBatch(capacity int) []readio.PairRecord {
	b := batchPool.Get().([]readio.PairRecord)
	if cap(b) < capacity {
		b = make([]readio.PairRecord, capacity)
		return b
	}
	return b[:capacity]
}

func putBatch(b []readio.PairRecord) {
	batchPool.Put(b[:0]) //nolint:staticcheck // reset length, keep capacity
}

// Sink receives one classification result per read, in the order
// Classify was asked to produce it for that batch; the orchestrator
// guarantees that Emit is only ever called with batch k's results
// before batch k+1's, so a Sink never needs its own reordering buffer.
type Sink interface {
	Emit(rec readio.PairRecord, result classify.Result) error
}

// Params configures a pipeline run. Threads mirrors cmd/centrifuger's
// -t flag; a zero BatchSize defaults to 1024*Threads per spec.md 4.7.
type Params struct {
	Threads   int
	BatchSize int
}

func (p Params) batchSize() int {
	if p.BatchSize > 0 {
		return p.BatchSize
	}
	t := p.Threads
	if t < 1 {
		t = 1
	}
	return 1024 * t
}

// Run drives feeder batches through the classifier and into sink,
// selecting a topology from params.Threads once at startup and running
// it to completion. It returns the first error encountered by any
// stage; the library itself never calls log.Fatal (spec.md 7) — that
// is left to the caller, i.e. cmd/centrifuger.
func Run(feeder readio.Feeder, classifier *classify.Classifier, sink Sink, params Params) error {
	topology, workers := ChooseTopology(params.Threads)
	log.Debug.Printf("pipeline: topology=%s workers=%d batchSize=%d", topology, workers, params.batchSize())

	switch topology {
	case Serial:
		return runSerial(feeder, classifier, sink, workers, params.batchSize())
	case DoubleBuffer:
		return runDoubleBuffer(feeder, classifier, sink, workers, params.batchSize())
	default:
		return runTripleBuffer(feeder, classifier, sink, workers, params.batchSize())
	}
}

// classifyBatch partitions batch[:n] across workers by static
// round-robin (i % W == tid, spec.md 4.7) and runs classify.Query for
// each record's pair, storing results at the matching index so output
// order never needs sorting.
func classifyBatch(classifier *classify.Classifier, batch []readio.PairRecord, n, workers int) []classify.Result {
	results := make([]classify.Result, n)
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	for tid := 0; tid < workers; tid++ {
		wg.Add(1)
		go func(tid int) {
			defer wg.Done()
			for i := tid; i < n; i += workers {
				rec := batch[i]
				var r1, r2 []byte
				if rec.R1 != nil {
					r1 = []byte(rec.R1.Seq)
				}
				if rec.R2 != nil {
					r2 = []byte(rec.R2.Seq)
				}
				results[i] = classifier.Query(r1, r2)
			}
		}(tid)
	}
	wg.Wait()
	return results
}

func emitBatch(sink Sink, batch []readio.PairRecord, results []classify.Result, n int) error {
	for i := 0; i < n; i++ {
		if err := sink.Emit(batch[i], results[i]); err != nil {
			return err
		}
	}
	return nil
}
