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
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// scriptExts are the file extensions findScript recognizes as REBOL
// scripts, tried in order when name has neither.
var scriptExts = []string{".r", ".reb"}

// Path is the list of directories findScript searches after the current
// directory and after treating name as a path relative to cwd.
var Path []string
var pathMap = map[string]bool{} // prevent adding dups in Path

// AddPath adds the directories specified in p, a colon separated list of
// directory names, to Path, if they are not already in Path. Using multiple
// arguments is also supported.
func AddPath(paths ...string) {
	for _, p := range paths {
		for _, dir := range strings.Split(p, ":") {
			if !pathMap[dir] {
				pathMap[dir] = true
				Path = append(Path, dir)
			}
		}
	}
}

// PathsWithModules returns every directory under and including root that
// contains a file with a recognized script extension, plus any error
// encountered walking the tree.
func PathsWithModules(root string) (paths []string, err error) {
	seen := map[string]bool{}
	filepath.Walk(root, func(p string, info os.FileInfo, e error) error {
		if e != nil {
			err = e
			return e
		}
		if info == nil || info.IsDir() {
			return nil
		}
		if !hasScriptExt(p) {
			return nil
		}
		dir := path.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			paths = append(paths, dir)
		}
		return nil
	})
	return
}

func hasScriptExt(name string) bool {
	for _, ext := range scriptExts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// readFile makes testing of findScript easier.
var readFile = os.ReadFile

// findScript returns the name and contents of the script file associated
// with name, or an error. If name has neither a '/' nor a recognized
// extension, each of scriptExts is tried in turn. The directory the script
// is found in is added to Path if not already present.
//
// A path of the form dir/... searches dir and all of its subdirectories. The
// current directory is always checked first, regardless of Path.
func findScript(name string) (string, string, error) {
	slash := strings.Index(name, "/")
	candidates := []string{name}
	if slash < 0 && !hasScriptExt(name) {
		candidates = nil
		for _, ext := range scriptExts {
			candidates = append(candidates, name+ext)
		}
	}

	for _, n := range candidates {
		if data, err := readFile(n); err == nil {
			AddPath(path.Dir(n))
			return n, string(data), nil
		}
	}
	if slash >= 0 {
		return "", "", fmt.Errorf("no such file: %s", name)
	}

	for _, dir := range Path {
		for _, n := range candidates {
			var full string
			if path.Base(dir) == "..." {
				full = findInDir(path.Dir(dir), n)
			} else {
				full = path.Join(dir, n)
			}
			if full == "" {
				continue
			}
			if data, err := readFile(full); err == nil {
				return full, string(data), nil
			}
		}
	}
	return "", "", fmt.Errorf("no such file: %s", name)
}

// findInDir looks for a file named name in dir or any of its subdirectories.
func findInDir(dir, name string) string {
	fis, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, fi := range fis {
		if !fi.IsDir() {
			if fi.Name() == name {
				return path.Join(dir, name)
			}
			continue
		}
		if n := findInDir(path.Join(dir, fi.Name()), name); n != "" {
			return n
		}
	}
	return ""
}
