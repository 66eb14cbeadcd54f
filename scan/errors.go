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
	"errors"
	"fmt"
	"strings"
)

// ScanError is one diagnostic produced by the scanner, shaped like the
// reference's ERROR_OBJ: nearest carries "(line N) <source snippet>",
// arg1 the token-kind name, arg2 the offending lexeme.
type ScanError struct {
	ID      string // "invalid", "missing", or "construct"
	Nearest string
	Arg1    string
	Arg2    string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s near %s: %q", e.ID, e.Arg1, e.Nearest, e.Arg2)
}

// recordError builds the nearest-line snippet the way the reference's
// Scan_Error does (skip indentation, take to end of line) and appends a
// ScanError to s.errs.
func (s *Scanner) recordError(id string, tokenName string, arg []byte) *ScanError {
	cp := s.st.headLine
	for cp < len(s.input) && isLexSpace(s.input[cp]) {
		cp++
	}
	start := cp
	for cp < len(s.input) && notNewline(s.input[cp]) {
		cp++
	}
	nearest := fmt.Sprintf("(line %d) %s", s.st.lineCount, string(s.input[start:cp]))

	err := &ScanError{ID: id, Nearest: nearest, Arg1: tokenName, Arg2: string(arg)}
	s.errs = append(s.errs, err)
	return err
}

// Err joins every recorded error into a single trimmed error.
func (s *Scanner) Err() error {
	if len(s.errs) == 0 {
		return nil
	}
	msgs := make([]string, len(s.errs))
	for i, e := range s.errs {
		msgs[i] = e.Error()
	}
	return errors.New(strings.TrimSpace(strings.Join(msgs, "\n")))
}

// Errors returns the individual errors recorded so far.
func (s *Scanner) Errors() []*ScanError { return s.errs }
