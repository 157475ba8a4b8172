//go:build unix

package bumpytrack

import "golang.org/x/sys/unix"

// checkAccess reports whether the current user may both read and write path.
func checkAccess(path string) error {
	return unix.Access(path, unix.R_OK|unix.W_OK)
}
