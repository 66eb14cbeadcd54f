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

// Package scan is the lexical scanner for REBOL source text: it converts a
// UTF-8 byte stream into a tree of typed values (blocks, parens, paths,
// words, numbers, strings, dates, tags, and so on).
//
// A generic REBOL source file is a sequence of lexemes, each classified
// into one of about twenty token kinds by a table-driven classifier with no
// backtracking. Tokens may recursively contain other tokens: a block
// `[ ... ]` or paren `( ... )` contains further lexemes, and a path
// `a/b/c` is itself a recursive scan in path mode.
//
// At the lowest level, ScanSource returns the tree of values found in a
// buffer. Scanner.ScanHead and HeaderOffset locate the `REBOL [ ... ]`
// header used by script loading without fully parsing the rest of the source. ScanWord and
// ScanIssue validate and intern a single lexeme.
//
// The Scanner type accumulates errors rather than stopping at the first one,
// the way the reference implementation's SCAN_STATE.errors does; Scanner.Err
// joins them into a single error for callers that only check success.
package scan
