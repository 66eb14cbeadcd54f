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
	"io"
	"os"

	"github.com/MarkEye/rebol/value"
)

// cursor is the per-scan position state, mirroring SCAN_STATE: head_line,
// begin, end delimit the current lexeme; limit is one past the last valid
// byte; lineCount is the 1-based line number of begin.
//
// Invariant: 0 <= headLine <= begin <= end <= limit <= len(input).
type cursor struct {
	headLine  int
	begin     int
	end       int
	limit     int
	lineCount int
}

// Scanner drives a single scan of an input buffer. It owns the mold buffer
// the reference keeps as a process-wide global (BUF_MOLD), and the emit
// buffer (BUF_EMIT) is a slice local to each scanBlock frame; neither is
// shared, so concurrent scans on different goroutines need no external
// synchronization, per the REDESIGN FLAG in spec.md §9.
type Scanner struct {
	input []byte
	st    cursor
	opts  Options
	errs  []*ScanError

	mold  []rune // transient decode sink, reset on every lexeme scan that uses it
	words value.Interner

	Debug  bool
	ErrOut io.Writer
}

// NewScanner initializes a Scanner over input, mirroring Init_Scan_State.
func NewScanner(input []byte, opts Options) *Scanner {
	return &Scanner{
		input: input,
		st: cursor{
			headLine:  0,
			begin:     0,
			end:       0,
			limit:     len(input),
			lineCount: 1,
		},
		opts:   opts,
		ErrOut: os.Stderr,
	}
}

// LineCount reports the current 1-based source line.
func (s *Scanner) LineCount() int { return s.st.lineCount }

// byteAt returns input[i], or 0 (the reference's NUL terminator sentinel)
// if i is out of range.
func (s *Scanner) byteAt(i int) byte {
	if i < 0 || i >= len(s.input) {
		return 0
	}
	return s.input[i]
}

func (s *Scanner) resetMold() { s.mold = s.mold[:0] }
