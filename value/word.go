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

import "strings"

// Word is a plain symbol (`foo`). SetWord (`foo:`), GetWord (`:foo`),
// LitWord (`'foo`) and Refinement (`/foo`) are distinct flavors the
// reference derives from a single REB_WORD + offset arithmetic trick
// (Scan_Block's TOKEN_WORD..TOKEN_SET case); they are kept as separate
// constructors here rather than one struct with an enum field, per the
// REDESIGN FLAG preferring an explicit sum type over encoded arithmetic.
type Word struct {
	newlineFlag
	Sym Symbol
}

func (*Word) Kind() Kind { return KindWord }

type SetWord struct {
	newlineFlag
	Sym Symbol
}

func (*SetWord) Kind() Kind { return KindSetWord }

type GetWord struct {
	newlineFlag
	Sym Symbol
}

func (*GetWord) Kind() Kind { return KindGetWord }

type LitWord struct {
	newlineFlag
	Sym Symbol
}

func (*LitWord) Kind() Kind { return KindLitWord }

type Refinement struct {
	newlineFlag
	Sym Symbol
}

func (*Refinement) Kind() Kind { return KindRefinement }

type Issue struct {
	newlineFlag
	Sym Symbol
}

func (*Issue) Kind() Kind { return KindIssue }

// Symbol is an interned word: Name preserves the case the word was written
// with, Canon is the case-folded key used for interning and comparison.
type Symbol struct {
	Name  string
	Canon string
}

// Interner is REBOL's Make_Word: given the raw bytes of a word lexeme, it
// returns the interned Symbol for it. The zero value is ready to use.
type Interner struct {
	table map[string]Symbol
}

// Intern looks up or creates the Symbol for name, folding case for the
// canonical key the way Make_Word's Upper_Case table does.
func (in *Interner) Intern(name string) Symbol {
	if in.table == nil {
		in.table = make(map[string]Symbol)
	}
	canon := strings.ToLower(name)
	if sym, ok := in.table[canon]; ok {
		return sym
	}
	sym := Symbol{Name: name, Canon: canon}
	in.table[canon] = sym
	return sym
}

// Len reports how many distinct words have been interned so far.
func (in *Interner) Len() int { return len(in.table) }
