package viewfinder

import (
	"path/filepath"
	"strings"

	"github.com/ryumina/viewfinder/internal/fsutil"
)

// ExistsFunc reports whether path names an existing regular file. It must
// never fail: permission errors, missing paths, and every other access
// failure all read as "does not exist".
type ExistsFunc func(path string) bool

// Resolver locates a file name under an ordered list of root directories.
// The zero value probes the real filesystem.
type Resolver struct {
	// Exists overrides the filesystem probe. Nil means the default
	// regular-file check against the local filesystem.
	Exists ExistsFunc
}

// Lookup returns the first path matching name across roots, in order. For
// each root it probes the exact file first, then the directory-index
// fallback <name without ext>/index<ext>. Once a root yields a match, later
// roots are never consulted. The second return is false when no root
// matched; that is data, not an error.
func (r Resolver) Lookup(name string, roots []string) (string, bool) {
	for _, root := range roots {
		if path, ok := r.lookupRoot(name, root); ok {
			return path, true
		}
	}
	return "", false
}

// lookupRoot runs the two-probe search for name under a single root.
func (r Resolver) lookupRoot(name, root string) (string, bool) {
	loc, err := filepath.Abs(filepath.Join(root, name))
	if err != nil {
		// Treated like any other probe failure.
		return "", false
	}
	dir, file := filepath.Split(loc)

	// <dir>/<file>
	path := filepath.Join(dir, file)
	if r.exists(path) {
		return path, true
	}

	// <dir>/<file minus ext>/index<ext>
	ext := filepath.Ext(file)
	path = filepath.Join(dir, strings.TrimSuffix(file, ext), "index"+ext)
	if r.exists(path) {
		return path, true
	}
	return "", false
}

func (r Resolver) exists(path string) bool {
	if r.Exists != nil {
		return r.Exists(path)
	}
	return fsutil.RegularFileExists(path)
}
