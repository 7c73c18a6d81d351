//go:build !unix

package iout

import "os"

// there is no access(2) here, stat follows symlinks the same way
func access(path string) error {
	_, err := os.Stat(path)
	return err
}
