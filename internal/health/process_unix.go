//go:build unix

package health

import (
	"errors"

	"golang.org/x/sys/unix"
)

// pidAlive probes the process table with a null signal. EPERM means the
// process exists but belongs to another user, which still counts as alive.
func pidAlive(pid int) bool {
	err := unix.Kill(pid, 0)
	if err == nil {
		return true
	}
	return errors.Is(err, unix.EPERM)
}
