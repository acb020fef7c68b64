//go:build !unix && !windows

package rawprint

func isTerminalFd(int) bool {
	return false
}
