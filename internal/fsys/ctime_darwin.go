//go:build darwin

package fsys

import (
	"syscall"
	"time"
)

func ctime(stat *syscall.Stat_t) time.Time {
	return time.Unix(stat.Ctimespec.Sec, stat.Ctimespec.Nsec)
}
