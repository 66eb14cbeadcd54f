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

import "testing"

func firstToken(src string) (tokenKind, bool, string) {
	s := NewScanner([]byte(src), Options{})
	tok := s.Next()
	return tok.Kind, tok.OK, string(tok.text(s.input))
}

func TestNextTokenKinds(t *testing.T) {
	for _, tt := range []struct {
		in   string
		kind tokenKind
		ok   bool
	}{
		{"foo", tokenWord, true},
		{"foo-bar", tokenWord, true},
		{"foo:", tokenSet, true},
		{":foo", tokenGet, true},
		{"'foo", tokenLit, true},
		{"/foo", tokenRefine, true},
		{"#foo", tokenIssue, true},
		{"#", tokenIssue, true},
		{"123", tokenInteger, true},
		{"1'200'000", tokenInteger, true},
		{"-123", tokenInteger, true},
		{"1.5", tokenDecimal, true},
		{"1,5", tokenDecimal, true},
		{"50%", tokenPercent, true},
		{"$20", tokenMoney, true},
		{"USD$20", tokenMoney, true},
		{"1x2", tokenPair, true},
		{"1.2.3", tokenTuple, true},
		{"10:30", tokenTime, true},
		{"1-Jan-2024", tokenDate, true},
		{`"hello"`, tokenString, true},
		{"#{DEADBEEF}", tokenBinary, true},
		{`#"A"`, tokenChar, true},
		{"<tag>", tokenTag, true},
		{"user@example.com", tokenEmail, true},
		{"http://example.com", tokenURL, true},
		{"%file.txt", tokenFile, true},
		{"[", tokenBlock, true},
		{"]", tokenBlockEnd, true},
		{"(", tokenParen, true},
		{")", tokenParenEnd, true},
		{"#[", tokenConstruct, true},
		{"", tokenEOF, true},
	} {
		kind, ok, _ := firstToken(tt.in)
		if kind != tt.kind || ok != tt.ok {
			t.Errorf("firstToken(%q) = (%v, %v), want (%v, %v)", tt.in, kind, ok, tt.kind, tt.ok)
		}
	}
}

// Pound-paren has no meaning in the reference's pound: dispatch (only '[',
// '"', '{' and angle brackets are recognised after '#'); it falls through
// to a malformed integer token.
func TestPoundParenRejected(t *testing.T) {
	kind, ok, _ := firstToken("#(")
	if kind != tokenInteger || ok {
		t.Errorf("firstToken(%q) = (%v, %v), want (tokenInteger, false)", "#(", kind, ok)
	}
}

func TestWordForbidsSpecialChars(t *testing.T) {
	for _, in := range []string{"foo@bar", "foo$bar", "foo%bar", `foo\bar`} {
		s := NewScanner([]byte(in), Options{})
		tok := s.Next()
		if tok.Kind == tokenWord && tok.OK {
			t.Errorf("firstToken(%q) scanned as a well-formed word, want rejection or a different kind", in)
		}
	}
}

func TestRadixBinary(t *testing.T) {
	for _, in := range []string{"2#{0101}", "16#{FF}", "64#{AAAA}"} {
		kind, ok, _ := firstToken(in)
		if kind != tokenBinary || !ok {
			t.Errorf("firstToken(%q) = (%v, %v), want (tokenBinary, true)", in, kind, ok)
		}
	}
}

func TestLineCounting(t *testing.T) {
	s := NewScanner([]byte("a\nb\nc"), Options{})
	for i := 0; i < 5; i++ {
		tok := s.Next()
		if tok.Kind == tokenEOF {
			break
		}
	}
	if got := s.LineCount(); got != 3 {
		t.Errorf("LineCount() = %d, want 3", got)
	}
}
