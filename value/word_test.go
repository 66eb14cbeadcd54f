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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInternerCaseFold(t *testing.T) {
	var in Interner
	a := in.Intern("Foo")
	b := in.Intern("FOO")
	if a.Canon != b.Canon {
		t.Errorf("Canon differs across case: %q vs %q", a.Canon, b.Canon)
	}
	if a.Name != "Foo" {
		t.Errorf("Name = %q, want Foo (case preserved from first intern)", a.Name)
	}
	if b.Name != "Foo" {
		t.Errorf("second Intern returned Name = %q, want the first spelling Foo", b.Name)
	}
}

func TestInternerIdempotent(t *testing.T) {
	var in Interner
	a := in.Intern("bar")
	b := in.Intern("bar")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("re-interning the same name gave a different Symbol (-first +second):\n%s", diff)
	}
	if in.Len() != 1 {
		t.Errorf("Len() = %d, want 1", in.Len())
	}
}

func TestInternerLen(t *testing.T) {
	var in Interner
	in.Intern("a")
	in.Intern("b")
	in.Intern("A")
	if got := in.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestWordFlavorKinds(t *testing.T) {
	sym := Symbol{Name: "foo", Canon: "foo"}
	cases := []struct {
		v    Value
		want Kind
	}{
		{&Word{Sym: sym}, KindWord},
		{&SetWord{Sym: sym}, KindSetWord},
		{&GetWord{Sym: sym}, KindGetWord},
		{&LitWord{Sym: sym}, KindLitWord},
		{&Refinement{Sym: sym}, KindRefinement},
		{&Issue{Sym: sym}, KindIssue},
	}
	for _, tt := range cases {
		if got := tt.v.Kind(); got != tt.want {
			t.Errorf("%T.Kind() = %v, want %v", tt.v, got, tt.want)
		}
	}
}
