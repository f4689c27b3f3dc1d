package stitch

import (
	"path/filepath"
	"strings"
)

// joinEntryPath joins the configured source directory with an entry name for
// display in block headers. filepath.Join would strip a leading "./", so a
// relative configuration like "./src" is put back to keep headers verbatim.
func joinEntryPath(dir, name string) string {
	joined := normalizePath(filepath.Join(dir, name))
	if strings.HasPrefix(dir, "./") && !strings.HasPrefix(joined, "./") {
		return "./" + joined
	}
	return joined
}

// readPath joins the source directory with an entry name in the cleaned form
// expected by filesystem operations.
func readPath(dir, name string) string {
	return filepath.Join(dir, name)
}

// normalizePath converts OS-specific path separators to forward slashes.
func normalizePath(path string) string {
	return filepath.ToSlash(path)
}
