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

/*
centrifuger classifies short sequencing reads against a prebuilt
FM-index of reference sequences, reporting the best-matching
reference(s) and taxon(s) per read.
*/

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/skchronicles/centrifuger/barcode"
	"github.com/skchronicles/centrifuger/classify"
	"github.com/skchronicles/centrifuger/pipeline"
	"github.com/skchronicles/centrifuger/readio"
	"github.com/skchronicles/centrifuger/result"
)

var (
	indexPrefix   = flag.String("x", "", "Index prefix (required); <prefix>.1.cfr/.2.cfr/.3.cfr")
	singleEndPath = flag.String("u", "", "Single-end FASTQ input")
	mate1Path     = flag.String("1", "", "Paired-end mate 1 FASTQ input")
	mate2Path     = flag.String("2", "", "Paired-end mate 2 FASTQ input")
	threads       = flag.Int("t", 1, "Total thread count")
	maxResult     = flag.Int("k", 1, "Max number of emitted tied matches per read")
	minHitLen     = flag.Int("min-hitlen", 22, "Minimum hit length")
	hitkFactor    = flag.Int("hitk-factor", 40, "Cap on SA positions resolved per hit (0 = unlimited)")
	mergeReadpair = flag.Bool("merge-readpair", false, "Merge overlapping read pairs before classification")
	readFormat    = flag.String("read-format", "", "Comma-separated segment:start:end clauses, segments in {r1,r2,bc,um}")
	barcodePath   = flag.String("barcode", "", "Barcode FASTQ input")
	umiPath       = flag.String("UMI", "", "UMI FASTQ input")
	whitelistPath = flag.String("barcode-whitelist", "", "Barcode whitelist file")
	translatePath = flag.String("barcode-translate", "", "Barcode translation table file")
	outputPath    = flag.String("o", "", "Output path (default stdout)")
	versionFlag   = flag.Bool("v", false, "Print version and exit")
)

const version = "1.0.0"

func centrifugerUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -x PREFIX {-u FILE | -1 FILE -2 FILE} [OPTIONS]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = centrifugerUsage
	shutdown := grail.Init()
	defer shutdown()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	if *indexPrefix == "" {
		log.Fatalf("centrifuger: -x PREFIX is required")
	}
	if *singleEndPath == "" && (*mate1Path == "" || *mate2Path == "") {
		log.Fatalf("centrifuger: either -u FILE or -1 FILE -2 FILE is required")
	}

	format, err := readio.ParseFormat(*readFormat)
	if err != nil {
		log.Fatalf("centrifuger: %v", err)
	}

	params := classify.Params{
		MaxResult:         *maxResult,
		MinHitLen:         *minHitLen,
		HitkFactor:        *hitkFactor,
		ScoreHitLenAdjust: 0, // use the production default
	}

	classifier, err := classify.New(*indexPrefix, params)
	if err != nil {
		log.Fatalf("centrifuger: loading index %s: %v", *indexPrefix, err)
	}

	feeder, err := openFeeder()
	if err != nil {
		log.Fatalf("centrifuger: %v", err)
	}

	barcodeFile, umiFile, err := openAuxStreams()
	if err != nil {
		log.Fatalf("centrifuger: %v", err)
	}
	if barcodeFile != nil || umiFile != nil {
		feeder = readio.NewAuxiliaryFeeder(feeder, barcodeFile, umiFile)
	}

	if format != nil {
		feeder = formattedFeeder{inner: feeder, format: format}
	}

	whitelist, err := openWhitelist()
	if err != nil {
		log.Fatalf("centrifuger: %v", err)
	}
	translator, err := openTranslator()
	if err != nil {
		log.Fatalf("centrifuger: %v", err)
	}
	if whitelist != nil || translator != nil {
		feeder = correctedFeeder{inner: feeder, whitelist: whitelist, translator: translator}
	}

	out := os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			log.Fatalf("centrifuger: creating %s: %v", *outputPath, err)
		}
		defer f.Close()
		out = f
	}
	writer := result.NewTSVWriter(out, *barcodePath != "" || (format != nil && hasSegment(format, readio.SegBC)), *umiPath != "" || (format != nil && hasSegment(format, readio.SegUM)))
	if err := writer.WriteHeader(); err != nil {
		log.Fatalf("centrifuger: writing header: %v", err)
	}
	sink := &result.PipelineSink{
		Writer: writer,
		SeqName: func(seqID uint64) string {
			if _, ok := classifier.SeqLength(seqID); !ok {
				log.Error.Printf("centrifuger: seqID %d missing from the loaded catalogue", seqID)
			}
			return fmt.Sprintf("%d", seqID)
		},
	}

	log.Debug.Printf("centrifuger: threads=%d", *threads)
	topology, workers := pipeline.ChooseTopology(*threads)
	log.Debug.Printf("centrifuger: topology=%s workers=%d", topology, workers)

	runErr := pipeline.Run(feeder, classifier, sink, pipeline.Params{Threads: *threads})
	if flushErr := writer.Flush(); flushErr != nil && runErr == nil {
		runErr = flushErr
	}
	if runErr != nil {
		log.Fatalf("centrifuger: %v", runErr)
	}
}

func openFeeder() (readio.Feeder, error) {
	if *singleEndPath != "" {
		f, err := os.Open(*singleEndPath)
		if err != nil {
			return nil, errors.E(errors.NotExist, fmt.Sprintf("opening %s: %v", *singleEndPath, err))
		}
		return readio.NewSingleEndFeeder(f), nil
	}
	r1, err := os.Open(*mate1Path)
	if err != nil {
		return nil, errors.E(errors.NotExist, fmt.Sprintf("opening %s: %v", *mate1Path, err))
	}
	r2, err := os.Open(*mate2Path)
	if err != nil {
		return nil, errors.E(errors.NotExist, fmt.Sprintf("opening %s: %v", *mate2Path, err))
	}
	return readio.NewPairedFeeder(r1, r2), nil
}

func openAuxStreams() (barcodeFile, umiFile io.Reader, err error) {
	if *barcodePath != "" {
		f, err := os.Open(*barcodePath)
		if err != nil {
			return nil, nil, errors.E(errors.NotExist, fmt.Sprintf("opening %s: %v", *barcodePath, err))
		}
		barcodeFile = f
	}
	if *umiPath != "" {
		f, err := os.Open(*umiPath)
		if err != nil {
			return nil, nil, errors.E(errors.NotExist, fmt.Sprintf("opening %s: %v", *umiPath, err))
		}
		umiFile = f
	}
	return barcodeFile, umiFile, nil
}

func openWhitelist() (*barcode.Whitelist, error) {
	if *whitelistPath == "" {
		return nil, nil
	}
	f, err := os.Open(*whitelistPath)
	if err != nil {
		return nil, errors.E(errors.NotExist, fmt.Sprintf("opening %s: %v", *whitelistPath, err))
	}
	defer f.Close()
	return barcode.NewWhitelist(f)
}

func openTranslator() (*barcode.Translator, error) {
	if *translatePath == "" {
		return nil, nil
	}
	f, err := os.Open(*translatePath)
	if err != nil {
		return nil, errors.E(errors.NotExist, fmt.Sprintf("opening %s: %v", *translatePath, err))
	}
	defer f.Close()
	return barcode.NewTranslator(f)
}

func hasSegment(format readio.Format, seg readio.Segment) bool {
	for _, s := range format {
		if s.Segment == seg {
			return true
		}
	}
	return false
}

// formattedFeeder applies --read-format to every record a wrapped
// Feeder produces before the pipeline sees it.
type formattedFeeder struct {
	inner  readio.Feeder
	format readio.Format
}

func (f formattedFeeder) NextBatch(buf []readio.PairRecord) (int, error) {
	n, err := f.inner.NextBatch(buf)
	for i := 0; i < n; i++ {
		buf[i] = f.format.Apply(buf[i])
	}
	return n, err
}

// correctedFeeder applies barcode whitelist correction and/or
// translation to every record a wrapped Feeder produces.
type correctedFeeder struct {
	inner      readio.Feeder
	whitelist  *barcode.Whitelist
	translator *barcode.Translator
}

func (f correctedFeeder) NextBatch(buf []readio.PairRecord) (int, error) {
	n, err := f.inner.NextBatch(buf)
	for i := 0; i < n; i++ {
		if buf[i].Barcode == "" {
			continue
		}
		bc := buf[i].Barcode
		if f.whitelist != nil {
			bc = f.whitelist.Correct(bc)
		}
		if f.translator != nil {
			bc = f.translator.Translate(bc)
		}
		buf[i].Barcode = bc
	}
	return n, err
}
