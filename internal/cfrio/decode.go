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

package cfrio

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ReadU8, ReadU32, ReadU64 decode little-endian fixed-width fields from
// the .cfr binary layouts (header magic/version/counts, C-array entries,
// sample pairs).

// wrapReadErr passes io.EOF through unwrapped so callers looping until
// EOF (e.g. LoadCatalogue's .3.cfr stream) can compare against it
// directly, and wraps anything else with context.
func wrapReadErr(err error, msg string) error {
	if err == io.EOF {
		return err
	}
	return errors.Wrap(err, msg)
}

func ReadU8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, wrapReadErr(err, "cfrio: read u8")
	}
	return b[0], nil
}

func ReadU32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, wrapReadErr(err, "cfrio: read u32")
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func ReadU64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, wrapReadErr(err, "cfrio: read u64")
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ReadLengthPrefixedString decodes a u32-length-prefixed UTF-8 string, as
// used by the taxonomy names table (spec.md 6, .2.cfr).
func ReadLengthPrefixedString(r io.Reader) (string, error) {
	n, err := ReadU32(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", errors.Wrap(err, "cfrio: read string body")
	}
	return string(buf), nil
}

// WriteU8, WriteU32, WriteU64, WriteLengthPrefixedString are the encoder
// counterparts, used by the index-building test helpers that synthesize
// .cfr fixtures in-process (index construction proper is out of scope
// per spec.md 1, but tests need a writer to round-trip the Load path).

func WriteU8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return errors.Wrap(err, "cfrio: write u8")
}

func WriteU32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return errors.Wrap(err, "cfrio: write u32")
}

func WriteU64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return errors.Wrap(err, "cfrio: write u64")
}

func WriteLengthPrefixedString(w io.Writer, s string) error {
	if err := WriteU32(w, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return errors.Wrap(err, "cfrio: write string body")
}
