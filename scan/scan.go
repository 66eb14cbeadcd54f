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

import (
	"github.com/MarkEye/rebol/value"
)

// ScanSource scans a full source buffer into a top-level block of values, the
// way Scan_Source scans an entire LOAD'd script body with no header
// requirement. The returned error, if any, joins every diagnostic recorded
// during the scan (see Scanner.Err).
func ScanSource(input []byte) ([]value.Value, error) {
	s := NewScanner(input, Options{})
	items := s.ScanBlock()
	return items, s.Err()
}

// Transcode scans input under opts and additionally reports the byte offset
// just past the last token consumed, mirroring the REBNATIVE(transcode)
// action's updated VAL_INDEX: with Options.Next set, callers use the
// returned offset to resume scanning the remainder on a subsequent call.
func Transcode(input []byte, opts Options) ([]value.Value, int, error) {
	s := NewScanner(input, opts)
	items := s.ScanBlock()
	return items, s.st.end, s.Err()
}

// ScanWord scans input as a single bare word and interns it, returning ok
// false if input is not exactly one well-formed WORD token from start to
// end. It implements Scan_Word.
func ScanWord(input []byte) (value.Symbol, bool) {
	s := NewScanner(input, Options{})
	tok := s.Next()
	if tok.Kind != tokenWord || !tok.OK || tok.End != len(input) {
		return value.Symbol{}, false
	}
	return s.words.Intern(string(input)), true
}

// ScanIssue scans input as an issue body, allowing the tick/comma/period/
// plus/minus/angle-bracket special characters an ordinary word forbids. It
// implements Scan_Issue.
func ScanIssue(input []byte) (value.Symbol, bool) {
	cp := 0
	for cp < len(input) && isLexSpace(input[cp]) {
		cp++
	}
	if cp == len(input) {
		return value.Symbol{}, false
	}

	bp := cp
	for cp < len(input) {
		b := input[cp]
		switch classOf(b) {
		case lexClassDelimit:
			return value.Symbol{}, false
		case lexClassSpecial:
			switch valueOf(b) {
			case lexSpecialTick, lexSpecialComma, lexSpecialPeriod, lexSpecialPlus,
				lexSpecialMinus, lexSpecialLesser, lexSpecialGreater:
				cp++
			default:
				return value.Symbol{}, false
			}
		default: // WORD, NUMBER
			cp++
		}
	}

	var in Interner
	return in.Intern(string(input[bp:cp])), true
}

// Interner is a package-level alias so callers scanning standalone issues
// don't need a full Scanner; it is the same type the Scanner embeds.
type Interner = value.Interner
