//go:build !linux && !darwin

package fsys

import (
	"io/fs"
	"time"
)

// permissionString degrades to a coarse readable/writable split on
// platforms without unix permission bits
func permissionString(mode fs.FileMode) string {
	if mode.Perm()&0o200 == 0 {
		return "readonly"
	}
	return "readwrite"
}

// ownerAndCreated has no portable answer; the caller falls back to the
// modification time for created
func ownerAndCreated(info fs.FileInfo) (string, time.Time) {
	return "", time.Time{}
}
