//go:build windows

package rawprint

import "syscall"

// Descriptor numbers are mapped to the process's standard handles; a
// GetConsoleMode probe on anything else has no meaning here.
func isTerminalFd(fd int) bool {
	var h syscall.Handle
	switch fd {
	case 1:
		h = syscall.Stdout
	case 2:
		h = syscall.Stderr
	default:
		return false
	}
	var mode uint32
	return syscall.GetConsoleMode(h, &mode) == nil
}
