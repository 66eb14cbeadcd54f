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

import "testing"

func TestScanTime(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want int64
		ok   bool
	}{
		{"10:30", (10*3600 + 30*60) * 1e9, true},
		{"10:30:15", (10*3600 + 30*60 + 15) * 1e9, true},
		{"-1:00", -3600 * 1e9, true},
		{"bogus", 0, false},
	} {
		got, ok := ScanTime([]byte(tt.in))
		if ok != tt.ok {
			t.Errorf("ScanTime(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.Nanoseconds != tt.want {
			t.Errorf("ScanTime(%q) = %d, want %d", tt.in, got.Nanoseconds, tt.want)
		}
	}
}

func TestScanDate(t *testing.T) {
	d, ok := ScanDate([]byte("1-jan-2024"))
	if !ok {
		t.Fatal("ScanDate(1-jan-2024) unexpectedly failed")
	}
	if d.Day != 1 || d.Month != 1 || d.Year != 2024 || d.HasTime {
		t.Errorf("got %+v, want {Day:1 Month:1 Year:2024 HasTime:false}", d)
	}
}

func TestScanDateWithEmbeddedTime(t *testing.T) {
	d, ok := ScanDate([]byte("1-jan-2024/10:30:00"))
	if !ok {
		t.Fatal("ScanDate with embedded time unexpectedly failed")
	}
	if !d.HasTime {
		t.Fatal("HasTime = false, want true")
	}
	want := int64((10*3600 + 30*60) * 1e9)
	if d.Time.Nanoseconds != want {
		t.Errorf("embedded time = %d, want %d", d.Time.Nanoseconds, want)
	}
}

func TestScanDateNumericMonth(t *testing.T) {
	d, ok := ScanDate([]byte("15-03-99"))
	if !ok {
		t.Fatal("ScanDate(15-03-99) unexpectedly failed")
	}
	if d.Month != 3 || d.Year != 2099 {
		t.Errorf("got Month=%d Year=%d, want Month=3 Year=2099 (two-digit year normalization)", d.Month, d.Year)
	}
}

func TestScanDateRejectsBadMonth(t *testing.T) {
	if _, ok := ScanDate([]byte("1-foo-2024")); ok {
		t.Error("ScanDate accepted an unrecognized month name")
	}
}
