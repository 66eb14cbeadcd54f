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

func TestClassOf(t *testing.T) {
	for _, tt := range []struct {
		b    byte
		want lexClass
	}{
		{' ', lexClassDelimit},
		{'\t', lexClassDelimit},
		{'\n', lexClassDelimit},
		{'[', lexClassDelimit},
		{']', lexClassDelimit},
		{'/', lexClassDelimit},
		{'#', lexClassSpecial},
		{':', lexClassSpecial},
		{'\'', lexClassSpecial},
		{'<', lexClassSpecial},
		{'a', lexClassWord},
		{'Z', lexClassWord},
		{'_', lexClassWord},
		{'0', lexClassNumber},
		{'9', lexClassNumber},
	} {
		if got := classOf(tt.b); got != tt.want {
			t.Errorf("classOf(%q) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestIsLexSpace(t *testing.T) {
	for _, b := range []byte{' ', '\t'} {
		if !isLexSpace(b) {
			t.Errorf("isLexSpace(%q) = false, want true", b)
		}
	}
	for _, b := range []byte{'a', '\n', '-'} {
		if isLexSpace(b) {
			t.Errorf("isLexSpace(%q) = true, want false", b)
		}
	}
}

func TestIsAngleChar(t *testing.T) {
	for _, b := range []byte("-=<|>+~") {
		if !isAngleChar(b) {
			t.Errorf("isAngleChar(%q) = false, want true", b)
		}
	}
	for _, b := range []byte("abc/[]") {
		if isAngleChar(b) {
			t.Errorf("isAngleChar(%q) = true, want false", b)
		}
	}
}

func TestCaseFold(t *testing.T) {
	if upperCaseByte('a') != 'A' || upperCaseByte('A') != 'A' || upperCaseByte('1') != '1' {
		t.Error("upperCaseByte did not fold as expected")
	}
	if lowerCaseByte('A') != 'a' || lowerCaseByte('a') != 'a' || lowerCaseByte('1') != '1' {
		t.Error("lowerCaseByte did not fold as expected")
	}
}
