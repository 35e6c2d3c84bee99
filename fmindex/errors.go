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
	"fmt"

	"github.com/grailbio/base/errors"
)

// corruptIndexErr reports a checksum/size mismatch while loading a .1.cfr
// file. Index I/O errors are fatal at load time per spec; queries
// themselves cannot fail.
func corruptIndexErr(detail string, args ...interface{}) error {
	return errors.E(errors.Invalid, "fmindex: corrupt index: "+fmt.Sprintf(detail, args...))
}
