//go:build linux || darwin

package fsys

import (
	"io/fs"
	"os/user"
	"strconv"
	"syscall"
	"time"
)

// permissionString renders the octal permission bits, e.g. "755"
func permissionString(mode fs.FileMode) string {
	return strconv.FormatUint(uint64(mode.Perm()), 8)
}

// ownerAndCreated resolves the owning user name (numeric uid when the
// name cannot be looked up) and the change time, which stands in for
// creation time on filesystems without birth time.
func ownerAndCreated(info fs.FileInfo) (string, time.Time) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", time.Time{}
	}

	uid := strconv.FormatUint(uint64(stat.Uid), 10)
	owner := uid
	if u, err := user.LookupId(uid); err == nil {
		owner = u.Username
	}
	return owner, ctime(stat)
}
