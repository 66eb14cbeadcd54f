// Copyright 2024 The Rebol-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scan

// Options controls how a scan behaves, mirroring the three flags the
// reference scanner keeps on SCAN_STATE.opts.
type Options struct {
	// Next stops the scan after the first top-level value has been
	// emitted, for LOAD/next.
	Next bool
	// Only prevents recursion into nested [ ] / ( ); they are scanned as
	// a single, byte-identical lexeme instead, for LOAD/only.
	Only bool
	// Relax converts a syntax error into an inline error! value appended
	// to the result block instead of aborting the scan.
	Relax bool
}
