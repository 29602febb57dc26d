// Package fsutil provides the filesystem probe used by view lookup.
package fsutil

import "os"

// RegularFileExists reports whether path names an existing regular file.
// It never returns an error: missing paths, permission failures, and every
// other stat failure all read as false. Directories and other non-regular
// entries are false as well. Callers rely on this collapse; do not change it
// into error-propagating behavior.
func RegularFileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
