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
	"fmt"
	"strconv"
	"strings"
)

// Mold renders v back to REBOL source text, the way the reference's MOLD
// buffer does for display and re-load. It is a display aid, not a codec:
// round-tripping through Mold and back through the scanner is not
// guaranteed to reproduce byte-identical whitespace or tick-separators.
func Mold(v Value) string {
	var sb strings.Builder
	mold(&sb, v)
	return sb.String()
}

// MoldBlock renders a sequence of top-level values space-separated, the
// shape a whole scanned script or block body takes.
func MoldBlock(items []Value) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = Mold(v)
	}
	return strings.Join(parts, " ")
}

func mold(sb *strings.Builder, v Value) {
	switch t := v.(type) {
	case *None:
		sb.WriteString("none")
	case *Word:
		sb.WriteString(t.Sym.Name)
	case *SetWord:
		sb.WriteString(t.Sym.Name)
		sb.WriteByte(':')
	case *GetWord:
		sb.WriteByte(':')
		sb.WriteString(t.Sym.Name)
	case *LitWord:
		sb.WriteByte('\'')
		sb.WriteString(t.Sym.Name)
	case *Refinement:
		sb.WriteByte('/')
		sb.WriteString(t.Sym.Name)
	case *Issue:
		sb.WriteByte('#')
		sb.WriteString(t.Sym.Name)
	case *Block:
		sb.WriteByte('[')
		moldItems(sb, t.Items)
		sb.WriteByte(']')
	case *Paren:
		sb.WriteByte('(')
		moldItems(sb, t.Items)
		sb.WriteByte(')')
	case *Path:
		moldPath(sb, t)
	case *String:
		sb.WriteByte('"')
		sb.WriteString(t.Text)
		sb.WriteByte('"')
	case *Binary:
		sb.WriteString("#{")
		for _, b := range t.Bytes {
			fmt.Fprintf(sb, "%02X", b)
		}
		sb.WriteByte('}')
	case *Char:
		sb.WriteString("#\"")
		sb.WriteRune(t.R)
		sb.WriteByte('"')
	case *File:
		sb.WriteByte('%')
		sb.WriteString(t.Name)
	case *Email:
		sb.WriteString(t.Addr)
	case *URL:
		sb.WriteString(t.Raw)
	case *Tag:
		sb.WriteByte('<')
		sb.WriteString(t.Body)
		sb.WriteByte('>')
	case *Integer:
		sb.WriteString(strconv.FormatInt(t.N, 10))
	case *Decimal:
		sb.WriteString(strconv.FormatFloat(t.F, 'g', -1, 64))
	case *Percent:
		sb.WriteString(strconv.FormatFloat(t.F*100, 'g', -1, 64))
		sb.WriteByte('%')
	case *Money:
		sb.WriteString(t.Currency)
		sb.WriteByte('$')
		sb.WriteString(strconv.FormatFloat(t.Amount, 'f', -1, 64))
	case *Pair:
		sb.WriteString(strconv.FormatFloat(t.X, 'g', -1, 64))
		sb.WriteByte('x')
		sb.WriteString(strconv.FormatFloat(t.Y, 'g', -1, 64))
	case *Tuple:
		for i, p := range t.Parts {
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(strconv.Itoa(int(p)))
		}
	case *Time:
		moldTime(sb, t.Nanoseconds)
	case *Date:
		moldDate(sb, t)
	case *Error:
		fmt.Fprintf(sb, "make error! [id: %s near: %q arg1: %q arg2: %q]", t.ID, t.Nearest, t.Arg1, t.Arg2)
	default:
		fmt.Fprintf(sb, "<unknown %T>", v)
	}
}

func moldItems(sb *strings.Builder, items []Value) {
	for i, v := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		mold(sb, v)
	}
}

func moldPath(sb *strings.Builder, p *Path) {
	if p.Flavor == KindGetPath {
		sb.WriteByte(':')
	} else if p.Flavor == KindLitPath {
		sb.WriteByte('\'')
	}
	for i, v := range p.Items {
		if i > 0 {
			sb.WriteByte('/')
		}
		mold(sb, v)
	}
	if p.Flavor == KindSetPath {
		sb.WriteByte(':')
	}
}

func moldTime(sb *strings.Builder, ns int64) {
	if ns < 0 {
		sb.WriteByte('-')
		ns = -ns
	}
	h := ns / 3600e9
	m := (ns % 3600e9) / 60e9
	s := float64(ns%60e9) / 1e9
	fmt.Fprintf(sb, "%d:%02d:%09.6f", h, m, s)
}

func moldDate(sb *strings.Builder, d *Date) {
	fmt.Fprintf(sb, "%d-%d-%d", d.Day, d.Month, d.Year)
	if d.HasTime {
		sb.WriteByte('/')
		moldTime(sb, d.Time.Nanoseconds)
	}
}
