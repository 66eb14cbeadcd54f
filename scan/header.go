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

// ScanHead searches for a REBOL header: the word REBOL followed by '[',
// separated only by whitespace, blank lines and comments, with nothing
// else on the line before it. On success it advances s.st.begin to the
// header block's body and returns 1 (plain header) or -1 (a header nested
// inside an enclosing '[', i.e. embedded code); it returns 0 if no header
// is present before the input ends. It implements Scan_Head.
func (s *Scanner) ScanHead() int {
	rp, bp := -1, -1
	cp := s.st.begin
	count := s.st.lineCount

	for {
		for isLexSpace(s.byteAt(cp)) {
			cp++
		}
		b := s.byteAt(cp)

		switch {
		case b == '[':
			if rp >= 0 {
				cp++
				s.st.begin = cp
				s.st.lineCount = count
				if bp >= 0 {
					return -1
				}
				return 1
			}
			bp = cp
			cp++
			continue

		case b == 'R' || b == 'r':
			if matchREBOLWord(s.input, cp) {
				rp = cp
				cp += 5
				continue
			}
			cp++
			bp = -1

		case b == 0:
			return 0
		}

		if b != ';' && b != 'R' && b != 'r' && notNewline(b) {
			rp, bp = -1, -1
		}

		for notNewline(s.byteAt(cp)) {
			cp++
		}
		if s.byteAt(cp) == '\r' && s.byteAt(cp+1) == '\n' {
			cp++
		}
		if s.byteAt(cp) != 0 {
			cp++
		}
		count++
	}
}

func matchREBOLWord(input []byte, pos int) bool {
	const word = "REBOL"
	if pos+len(word) > len(input) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if upperCaseByte(input[pos+i]) != word[i] {
			return false
		}
	}
	return true
}

// HeaderOffset implements Scan_Header: the byte offset of a header's start
// (the 'R'/'r' of the REBOL word, or the enclosing '[' for an embedded
// header), or -1 if the input carries no header.
func HeaderOffset(src []byte) int {
	s := NewScanner(src, Options{})
	result := s.ScanHead()
	if result == 0 {
		return -1
	}

	cp := s.st.begin - 2
	if result > 0 {
		for cp > 0 && s.byteAt(cp) != 'r' && s.byteAt(cp) != 'R' {
			cp--
		}
	} else {
		for cp > 0 && s.byteAt(cp) != '[' {
			cp--
		}
	}
	return cp
}
