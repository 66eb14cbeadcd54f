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

// Program transcode scans REBOL source and prints the values it finds.
//
// Usage: transcode [--path DIR] [--next] [--only] [--relax] [--header] [FILE ...]
//
// If DIR is specified, it is considered a comma separated list of paths.
// Each DIR is walked recursively, and DIR and every subdirectory below it
// that holds a .r or .reb file are appended to the search path.
//
// With no FILE arguments, standard input is scanned.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MarkEye/rebol/scan"
	"github.com/MarkEye/rebol/value"
	"github.com/pborman/getopt"
)

var stop = os.Exit

func main() {
	var paths []string
	var next, only, relax, header bool

	getopt.ListVarLong(&paths, "path", 0, "comma separated list of directories to add to search path", "DIR[,DIR...]")
	getopt.BoolVarLong(&next, "next", 0, "stop after the first top-level value")
	getopt.BoolVarLong(&only, "only", 0, "do not recurse into nested blocks or parens")
	getopt.BoolVarLong(&relax, "relax", 0, "embed syntax errors as error! values instead of aborting")
	getopt.BoolVarLong(&header, "header", 0, "report the byte offset of the REBOL script header, if any")
	getopt.SetParameters("[FILE ...]")

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		stop(1)
	}

	for _, p := range paths {
		expanded, err := scan.PathsWithModules(p)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		scan.AddPath(expanded...)
	}

	files := getopt.Args()

	if len(files) == 0 {
		run("<stdin>", readStdin(), next, only, relax, header)
		return
	}
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		run(name, data, next, only, relax, header)
	}
}

func readStdin() []byte {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}
	return data
}

func run(name string, data []byte, next, only, relax, header bool) {
	if header {
		off := scan.HeaderOffset(data)
		fmt.Printf("%s: header offset %d\n", name, off)
		return
	}

	items, _, err := scan.Transcode(data, scan.Options{Next: next, Only: only, Relax: relax})
	if len(items) > 0 {
		fmt.Println(value.MoldBlock(items))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		stop(1)
	}
}
