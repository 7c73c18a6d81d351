//go:build unix

package iout

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

func access(path string) error {
	if err := unix.Access(path, unix.F_OK); err != nil {
		return &fs.PathError{Op: "access", Path: path, Err: err}
	}
	return nil
}
