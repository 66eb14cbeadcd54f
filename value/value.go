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

// Package value implements the REBOL value constructors the scanner treats
// as external collaborators: Scan_Integer, Scan_Decimal, Scan_Date,
// Scan_Time, Scan_Money, Scan_Pair, Scan_Tuple, Scan_File, Scan_Email,
// Scan_URL, Scan_Binary, Scan_Any, and the interned-word table Make_Word.
//
// This package does not implement REBOL's evaluator, binding, or datatype
// coercion rules; it only parses the literal surface syntax the scanner
// hands it into a typed value, the way the native Scan_* functions do.
package value

// Kind identifies the datatype of a Value, mirroring the enumeration the
// reference scanner's token kinds resolve to.
type Kind int

const (
	KindNone Kind = iota
	KindBlock
	KindParen
	KindPath
	KindSetPath
	KindGetPath
	KindLitPath
	KindWord
	KindSetWord
	KindGetWord
	KindLitWord
	KindRefinement
	KindIssue
	KindString
	KindBinary
	KindPair
	KindTuple
	KindFile
	KindEmail
	KindURL
	KindTag
	KindChar
	KindInteger
	KindDecimal
	KindPercent
	KindMoney
	KindTime
	KindDate
	KindError
)

// kindNames follows the usual enum-plus-name-table pattern for giving
// a Stringer to an int-based enum.
var kindNames = map[Kind]string{
	KindNone:       "none",
	KindBlock:      "block",
	KindParen:      "paren",
	KindPath:       "path",
	KindSetPath:    "set-path",
	KindGetPath:    "get-path",
	KindLitPath:    "lit-path",
	KindWord:       "word",
	KindSetWord:    "set-word",
	KindGetWord:    "get-word",
	KindLitWord:    "lit-word",
	KindRefinement: "refinement",
	KindIssue:      "issue",
	KindString:     "string",
	KindBinary:     "binary",
	KindPair:       "pair",
	KindTuple:      "tuple",
	KindFile:       "file",
	KindEmail:      "email",
	KindURL:        "url",
	KindTag:        "tag",
	KindChar:       "char",
	KindInteger:    "integer",
	KindDecimal:    "decimal",
	KindPercent:    "percent",
	KindMoney:      "money",
	KindTime:       "time",
	KindDate:       "date",
	KindError:      "error",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Value is satisfied by every scanned REBOL datatype.
type Value interface {
	Kind() Kind
}

// HasNewline is implemented by values the block scanner marks as starting a
// new source line (the pending "new line" flag set by a LINE token).
type HasNewline interface {
	NewlineBefore() bool
	SetNewlineBefore(bool)
}

// newlineFlag is embedded by value types that can carry the new-line flag.
type newlineFlag struct {
	newline bool
}

func (n *newlineFlag) NewlineBefore() bool      { return n.newline }
func (n *newlineFlag) SetNewlineBefore(b bool)  { n.newline = b }

// None is REBOL's none! value, produced for a bare '#' issue and for empty
// leading-slash path elements.
type None struct{ newlineFlag }

func (None) Kind() Kind { return KindNone }
