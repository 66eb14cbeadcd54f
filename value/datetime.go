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
	"strconv"
	"strings"
)

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// Time is REBOL's time! (HH:MM:SS.nanoseconds), stored as a signed offset
// from midnight in nanoseconds so negative times (-1:00) are representable.
type Time struct {
	newlineFlag
	Nanoseconds int64
}

func (*Time) Kind() Kind { return KindTime }

// ScanTime implements the Scan_Time contract: HH:MM[:SS[.nnn]], optionally
// signed.
func ScanTime(lexeme []byte) (*Time, bool) {
	s := string(lexeme)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg, s = true, s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	s = strings.TrimSuffix(s, ":")
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return nil, false
	}
	h, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, false
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, false
	}
	var secNanos int64
	if len(fields) == 3 {
		secF, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, false
		}
		secNanos = int64(secF * 1e9)
	}
	total := int64(h)*3600e9 + int64(m)*60e9 + secNanos
	if neg {
		total = -total
	}
	return &Time{Nanoseconds: total}, true
}

// Date is REBOL's date! (1-Jan-2024, with an optional embedded time). Month
// may be numeric or a three-letter name. Time zones are not represented.
type Date struct {
	newlineFlag
	Year, Month, Day int
	HasTime          bool
	Time             Time
}

func (*Date) Kind() Kind { return KindDate }

// ScanDate implements the Scan_Date contract. lexeme may contain an
// embedded '/'-separated time, per original Scan_Block's TOKEN_DATE
// extension loop (date/time, e.g. "1-jan-2024/10:30:00").
func ScanDate(lexeme []byte) (*Date, bool) {
	s := string(lexeme)
	datePart, timePart, hasTime := s, "", false
	if i := strings.IndexByte(s, '/'); i >= 0 {
		datePart, timePart, hasTime = s[:i], s[i+1:], true
	}

	fields := strings.Split(datePart, "-")
	if len(fields) != 3 {
		return nil, false
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return nil, false
	}
	var month int
	if n, err := strconv.Atoi(fields[1]); err == nil {
		month = n
	} else if mo, ok := monthNames[strings.ToLower(fields[1])]; ok {
		month = mo
	} else {
		return nil, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, false
	}
	if year < 100 {
		year += 2000
	}
	d := &Date{Year: year, Month: month, Day: day}
	if hasTime {
		t, ok := ScanTime([]byte(timePart))
		if !ok {
			return nil, false
		}
		d.HasTime = true
		d.Time = *t
	}
	return d, true
}
