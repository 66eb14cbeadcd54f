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

// ScanBlock scans a top-level block body (as if already past the opening
// '['), returning its items. It is the public entry used by ScanSource for
// the implied outer block.
func (s *Scanner) ScanBlock() []value.Value {
	return s.scanBlock(0)
}

// scanBlock implements Scan_Block: modeChar is 0 for the implied outer
// block, ']' inside a block, ')' inside a paren, '/' while collecting a
// path's segments.
func (s *Scanner) scanBlock(modeChar byte) []value.Value {
	var items []value.Value
	line := false
	startLine := s.st.lineCount
	startHead := s.st.headLine

	justOnce := s.opts.Next
	if justOnce {
		s.opts.Next = false
	}

	for {
		tok := s.Next()
		if tok.Kind == tokenEOF {
			break
		}

		bp, ep := tok.Begin, tok.End

		if !tok.OK {
			s.emitSyntaxError(tok, &items)
			if s.opts.Relax {
				continue
			}
			return items
		}

		// Start of a path: /word inside an existing path continues it as
		// a leading none.
		if modeChar == '/' && s.byteAt(bp) == '/' {
			items = append(items, &value.None{})
			s.st.begin = bp + 1
			continue
		}

		isPathStart := modeChar != '/' &&
			(tok.Kind == tokenWord || tok.Kind == tokenLit || tok.Kind == tokenGet) &&
			s.byteAt(ep) == '/'

		var v value.Value

		if isPathStart {
			segKind := tok.Kind
			s.st.end = bp // rescan the head word as the path's first segment
			segments := s.scanBlock('/')
			switch segKind {
			case tokenLit:
				if s.byteAt(s.st.end) == ':' {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				v = &value.Path{Flavor: value.KindLitPath, Items: segments}
			case tokenGet:
				if s.byteAt(s.st.end) == ':' {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				v = &value.Path{Flavor: value.KindGetPath, Items: segments}
			default:
				if s.byteAt(s.st.end) == ':' {
					s.st.end++
					s.st.begin = s.st.end
					v = &value.Path{Flavor: value.KindSetPath, Items: segments}
				} else {
					v = &value.Path{Flavor: value.KindPath, Items: segments}
				}
			}
		} else {
			switch tok.Kind {
			case tokenLine:
				line = true
				s.st.headLine = ep
				continue

			case tokenWord, tokenSet, tokenGet, tokenLit:
				b, e, ok := trimWordBounds(tok, bp, ep, modeChar, s)
				if !ok {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				sym := s.words.Intern(string(s.input[b:e]))
				kind := tok.Kind
				if modeChar == '/' && (kind == tokenSet || len(items) == 0) {
					// A path's head and its trailing set-word are plain word
					// segments; the path value carries the get/lit/set flavor.
					kind = tokenWord
				}
				v = wordValue(kind, sym)

			case tokenRefine:
				sym := s.words.Intern(string(s.input[bp+1 : ep]))
				v = &value.Refinement{Sym: sym}

			case tokenIssue:
				if ep-bp == 1 {
					v = &value.None{}
				} else {
					sym := s.words.Intern(string(s.input[bp+1 : ep]))
					v = &value.Issue{Sym: sym}
				}

			case tokenBlock:
				inner := s.scanBlock(']')
				v = &value.Block{Items: inner}

			case tokenParen:
				inner := s.scanBlock(')')
				v = &value.Paren{Items: inner}

			case tokenConstruct:
				inner := s.scanBlock(']')
				v = &value.Block{Items: inner}

			case tokenBlockEnd:
				if modeChar == 0 {
					s.emitExtraError(tok, '[', &items)
					if s.opts.Relax {
						continue
					}
					return items
				} else if modeChar != ']' {
					s.emitMissingError(tok, modeChar, startLine, startHead, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				return finish(items, line, modeChar, startLine, startHead)

			case tokenParenEnd:
				if modeChar == 0 {
					s.emitExtraError(tok, '(', &items)
					if s.opts.Relax {
						continue
					}
					return items
				} else if modeChar != ')' {
					s.emitMissingError(tok, modeChar, startLine, startHead, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				return finish(items, line, modeChar, startLine, startHead)

			case tokenInteger:
				if s.byteAt(ep) != '/' || modeChar == '/' {
					iv, ok := value.ScanInteger(s.input[bp:ep])
					if !ok {
						s.emitSyntaxError(tok, &items)
						if s.opts.Relax {
							continue
						}
						return items
					}
					v = iv
				} else {
					for s.byteAt(ep) == '/' || isLexAtLeastSpecial(s.byteAt(ep)) {
						ep++
					}
					s.st.begin = ep
					dv, ok := value.ScanDate(s.input[bp:ep])
					if !ok {
						s.emitSyntaxError(tok, &items)
						if s.opts.Relax {
							continue
						}
						return items
					}
					v = dv
				}

			case tokenDecimal, tokenPercent:
				if s.byteAt(ep) == '/' && modeChar != '/' {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				f, ok := value.ScanDecimal(s.input[bp:ep], tok.Kind == tokenPercent || s.byteAt(ep-1) == '%')
				if !ok {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				if s.byteAt(ep-1) == '%' {
					v = &value.Percent{F: f}
				} else {
					v = &value.Decimal{F: f}
				}

			case tokenMoney:
				if s.byteAt(ep) == '/' && modeChar != '/' {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				mv, ok := value.ScanMoney(s.input[bp:ep])
				if !ok {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				v = mv

			case tokenTime:
				if s.byteAt(ep-1) == ':' && modeChar == '/' && isLexDelimit(s.byteAt(ep)) && s.byteAt(ep) != '/' {
					iv, ok := value.ScanInteger(s.input[bp : ep-1])
					if !ok {
						s.emitSyntaxError(tok, &items)
						if s.opts.Relax {
							continue
						}
						return items
					}
					s.st.end--
					v = iv
					break
				}
				tv, ok := value.ScanTime(s.input[bp:ep])
				if !ok {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				v = tv

			case tokenDate:
				for s.byteAt(ep) == '/' && modeChar != '/' {
					ep++
					for isLexAtLeastSpecial(s.byteAt(ep)) {
						ep++
					}
					if ep-bp > maxDateTimeExtend {
						break
					}
					s.st.end = ep
				}
				dv, ok := value.ScanDate(s.input[bp:ep])
				if !ok {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				v = dv

			case tokenChar:
				body := bp + 2 // skip #"
				r, _, ok := decodeEscape(s.input, body)
				if !ok {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				v = &value.Char{R: r}

			case tokenString:
				v = &value.String{Text: string(s.mold)}

			case tokenBinary:
				bv, ok := value.ScanBinary(string(s.mold))
				if !ok {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				v = bv

			case tokenPair:
				pv, ok := value.ScanPair(s.input[bp:ep])
				if !ok {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				v = pv

			case tokenTuple:
				tv, ok := value.ScanTuple(s.input[bp:ep])
				if !ok {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				v = tv

			case tokenFile:
				v = value.ScanFile(string(s.mold))

			case tokenEmail:
				ev, ok := value.ScanEmail(s.input[bp:ep])
				if !ok {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
				v = ev

			case tokenURL:
				v = value.ScanURL(s.input[bp:ep])

			case tokenTag:
				tagBp, tagLen := bp+1, ep-bp-2
				if tagLen > 0 && s.byteAt(tagBp) == '.' {
					tagBp++
					tagLen--
				} else {
					for tagLen > 0 && isAngleChar(s.byteAt(tagBp)) {
						tagBp++
						tagLen--
					}
				}
				v = &value.Tag{Body: value.ScanAny(string(s.input[tagBp : tagBp+tagLen]))}

			default:
				v = &value.None{}
			}
		}

		if line {
			line = false
			if hn, ok := v.(value.HasNewline); ok {
				hn.SetNewlineBefore(true)
			}
		}

		items = append(items, v)

		if modeChar == '/' {
			if s.byteAt(s.st.end) == '/' {
				s.st.end++
				s.st.begin = s.st.end
				nc := s.byteAt(s.st.end)
				if nc == '/' || nc == ')' || nc == ']' || nc == ';' || isLexSpace(nc) || isLexDelimit(nc) {
					s.emitSyntaxError(tok, &items)
					if s.opts.Relax {
						continue
					}
					return items
				}
			} else {
				return finish(items, line, modeChar, startLine, startHead)
			}
		}

		if s.opts.Only || justOnce {
			return finish(items, line, modeChar, startLine, startHead)
		}
	}

	if modeChar == ']' || modeChar == ')' {
		s.emitMissingError(Token{}, modeChar, startLine, startHead, &items)
	}
	return finish(items, line, modeChar, startLine, startHead)
}

// maxDateTimeExtend bounds the date/time-continuation loop in the TOKEN_DATE
// case, matching the reference's hard-coded 50-byte backstop against a
// runaway path of slashes.
const maxDateTimeExtend = 50

func finish(items []value.Value, line bool, _ byte, _ int, _ int) []value.Value {
	if line && len(items) > 0 {
		if hn, ok := items[len(items)-1].(value.HasNewline); ok {
			hn.SetNewlineBefore(true)
		}
	}
	return items
}

func wordValue(kind tokenKind, sym value.Symbol) value.Value {
	switch kind {
	case tokenSet:
		return &value.SetWord{Sym: sym}
	case tokenGet:
		return &value.GetWord{Sym: sym}
	case tokenLit:
		return &value.LitWord{Sym: sym}
	default:
		return &value.Word{Sym: sym}
	}
}

// trimWordBounds applies the reference's per-token-kind byte trimming
// (strip the leading sigil for GET/LIT, the trailing ':' for SET) before the
// word body is interned.
func trimWordBounds(tok Token, bp, ep int, modeChar byte, s *Scanner) (int, int, bool) {
	switch tok.Kind {
	case tokenLit, tokenGet:
		if s.byteAt(ep-1) == ':' {
			if ep-bp == 1 || modeChar != '/' || s.byteAt(ep) == '/' {
				return 0, 0, false
			}
			ep--
			s.st.end--
		}
		bp++
		if ep-bp == 0 {
			return 0, 0, false
		}
		return bp, ep, true

	case tokenSet:
		ep--
		if modeChar == '/' {
			if s.byteAt(tok.End) == '/' {
				return 0, 0, false
			}
			s.st.end--
		}
		if ep-bp == 0 {
			return 0, 0, false
		}
		return bp, ep, true

	default: // tokenWord
		if ep-bp == 0 {
			return 0, 0, false
		}
		return bp, ep, true
	}
}

func (s *Scanner) emitSyntaxError(tok Token, items *[]value.Value) {
	arg := s.input[tok.Begin:tok.End]
	err := s.recordError("invalid", tok.Kind.String(), arg)
	if s.opts.Relax {
		*items = append(*items, &value.Error{ID: err.ID, Nearest: err.Nearest, Arg1: err.Arg1, Arg2: err.Arg2})
	}
}

func (s *Scanner) emitMissingError(_ Token, modeChar byte, startLine, startHead int, items *[]value.Value) {
	s.st.lineCount = startLine
	s.st.headLine = startHead
	s.emitExtraError(Token{}, modeChar, items)
}

func (s *Scanner) emitExtraError(_ Token, modeChar byte, items *[]value.Value) {
	err := s.recordError("missing", "block", []byte{modeChar})
	if s.opts.Relax {
		*items = append(*items, &value.Error{ID: err.ID, Nearest: err.Nearest, Arg1: err.Arg1, Arg2: err.Arg2})
	}
}
