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

package value

import (
	"encoding/hex"
	"strings"
)

// String is REBOL's string!, already de-escaped by the scanner's mold
// buffer (Scan_Quote) before reaching this constructor.
type String struct {
	newlineFlag
	Text string
}

func (*String) Kind() Kind { return KindString }

// Binary is REBOL's binary!, a byte run written as #{..hex..}; whitespace
// between hex digit pairs is ignored, per original Scan_Binary behaviour.
type Binary struct {
	newlineFlag
	Bytes []byte
}

func (*Binary) Kind() Kind { return KindBinary }

// ScanBinary implements the Scan_Binary contract: decoded mold-buffer text
// (the already de-escaped body between `{` and `}`) is hex-decoded after
// stripping whitespace.
func ScanBinary(moldText string) (*Binary, bool) {
	var sb strings.Builder
	for _, r := range moldText {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		sb.WriteRune(r)
	}
	s := sb.String()
	if len(s)%2 != 0 {
		return nil, false
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, false
	}
	return &Binary{Bytes: b}, true
}

// Char is REBOL's char! (#"A", #"^(2022)").
type Char struct {
	newlineFlag
	R rune
}

func (*Char) Kind() Kind { return KindChar }

// File is REBOL's file! (%file.txt, %/usr/bin).
type File struct {
	newlineFlag
	Name string
}

func (*File) Kind() Kind { return KindFile }

// ScanFile implements the Scan_File contract: the mold/item text is used
// verbatim, the leading '%' already stripped by the scanner.
func ScanFile(itemText string) *File { return &File{Name: itemText} }

// Email is REBOL's email! (user@example.com).
type Email struct {
	newlineFlag
	Addr string
}

func (*Email) Kind() Kind { return KindEmail }

// ScanEmail implements the Scan_Email contract.
func ScanEmail(lexeme []byte) (*Email, bool) {
	s := string(lexeme)
	if !strings.Contains(s, "@") {
		return nil, false
	}
	return &Email{Addr: s}, true
}

// URL is REBOL's url! (http://example.com, ftp://host/path).
type URL struct {
	newlineFlag
	Raw string
}

func (*URL) Kind() Kind { return KindURL }

// ScanURL implements the Scan_URL contract.
func ScanURL(lexeme []byte) *URL { return &URL{Raw: string(lexeme)} }

// Tag is REBOL's tag! (<a href="x">), stored with its angle brackets
// stripped, matching the reference's Scan_Any call over the body between
// '<' and the closing '>'.
type Tag struct {
	newlineFlag
	Body string
}

func (*Tag) Kind() Kind { return KindTag }

// ScanAny implements the generic Scan_Any contract used to build the Tag
// body (and, in the reference, other "copy whatever bytes you were given"
// constructions).
func ScanAny(text string) string { return text }
