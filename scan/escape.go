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

import "unicode/utf8"

// escNames is the canonical ^(name) escape table, reproducing the boot-time
// table the reference's Scan_Char refers to (Esc_Names/Esc_Codes) and named
// explicitly in spec.md's open question on the subject.
var escNames = map[string]rune{
	"null":   0,
	"line":   '\n',
	"tab":    '\t',
	"page":   '\f',
	"escape": 27,
	"back":   8,
	"del":    127,
}

// decodeEscape decodes one logical character starting at input[pos],
// returning the code point and the position just past all bytes consumed.
// It implements the reference's Scan_Char.
func decodeEscape(input []byte, pos int) (rune, int, bool) {
	if pos >= len(input) {
		return 0, pos, false
	}

	c := input[pos]

	if c >= 0x80 {
		r, size := utf8.DecodeRune(input[pos:])
		if r == utf8.RuneError && size <= 1 {
			return 0, pos, false
		}
		return r, pos + size, true
	}

	if c != '^' {
		return rune(c), pos + 1, true
	}

	pos++
	if pos >= len(input) {
		return 0, pos, false
	}
	c = input[pos]
	pos++

	switch c {
	case 0:
		return 0, pos, true
	case '/':
		return '\n', pos, true
	case '^':
		return '^', pos, true
	case '-':
		return '\t', pos, true
	case '!':
		return 0x1E, pos, true
	case '~':
		return 0x7F, pos, true
	case '(':
		return decodeParenEscape(input, pos)
	default:
		up := upperCaseByte(c)
		if up >= '@' && up <= '_' {
			return rune(up - '@'), pos, true
		}
		// includes ^{, ^}, ^"
		return rune(c), pos, true
	}
}

// decodeParenEscape decodes the body of a ^(...) escape: up to four hex
// digits followed by ')', or a case-insensitive name from escNames.
func decodeParenEscape(input []byte, pos int) (rune, int, bool) {
	start := pos
	cp := pos
	var n rune
	for cp < len(input) && isHexDigit(input[cp]) {
		n = n<<4 + rune(hexValue(input[cp]))
		cp++
		if cp-start > 4 {
			return 0, pos, false
		}
	}
	if cp > start && cp < len(input) && input[cp] == ')' {
		return n, cp + 1, true
	}

	// Not (only) hex: try a name.
	end := start
	for end < len(input) && input[end] != ')' {
		end++
	}
	if end >= len(input) {
		return 0, pos, false
	}
	name := string(input[start:end])
	if code, ok := lookupEscName(name); ok {
		return code, end + 1, true
	}
	return 0, pos, false
}

func lookupEscName(name string) (rune, bool) {
	lower := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		lower[i] = lowerCaseByte(name[i])
	}
	code, ok := escNames[string(lower)]
	return code, ok
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}
