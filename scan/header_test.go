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

func TestScanHeadFindsPlainHeader(t *testing.T) {
	src := "REBOL [\n    title: \"test\"\n]\nprint 1"
	s := NewScanner([]byte(src), Options{})
	result := s.ScanHead()
	if result != 1 {
		t.Fatalf("ScanHead() = %d, want 1", result)
	}
}

func TestScanHeadSkipsCommentsAndBlankLines(t *testing.T) {
	src := "; a comment\n\nREBOL [\n]\n"
	s := NewScanner([]byte(src), Options{})
	if result := s.ScanHead(); result != 1 {
		t.Errorf("ScanHead() = %d, want 1", result)
	}
}

func TestScanHeadNoHeader(t *testing.T) {
	src := "print 1 + 2"
	s := NewScanner([]byte(src), Options{})
	if result := s.ScanHead(); result != 0 {
		t.Errorf("ScanHead() = %d, want 0", result)
	}
}

func TestScanHeadEmbeddedInBlock(t *testing.T) {
	src := "[REBOL [\n]]"
	s := NewScanner([]byte(src), Options{})
	if result := s.ScanHead(); result != -1 {
		t.Errorf("ScanHead() = %d, want -1 (embedded header)", result)
	}
}

func TestHeaderOffset(t *testing.T) {
	src := []byte("; leading comment\nREBOL [\n title: \"x\"\n]\n")
	off := HeaderOffset(src)
	if off < 0 || off >= len(src) {
		t.Fatalf("HeaderOffset() = %d, out of range", off)
	}
	if src[off] != 'R' && src[off] != 'r' {
		t.Errorf("HeaderOffset() points at %q, want the 'R' of REBOL", src[off])
	}
}

func TestHeaderOffsetNoHeader(t *testing.T) {
	if off := HeaderOffset([]byte("print 1")); off != -1 {
		t.Errorf("HeaderOffset() = %d, want -1", off)
	}
}
