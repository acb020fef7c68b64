//go:build !unix && !windows

package rawfd

import "syscall"

// Write issues a single syscall.Write against fd on platforms without a
// dedicated implementation (plan9, js, wasip1).
func Write(fd int, p []byte) (int, bool) {
	if len(p) == 0 {
		return 0, false
	}
	n, err := syscall.Write(fd, p)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
