package iout

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

//IsNotExist reports whether err means that the path (or one of its parents) does not exist.
//A parent that is not a directory (ENOTDIR) is NOT reported as not existing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

//Cause strips the path and operation wrappers the os package puts around a system error,
//so that it can be printed as "<path>: <description>" by the caller.
func Cause(err error) error {
	var pErr *fs.PathError
	if errors.As(err, &pErr) && pErr.Err != nil {
		return pErr.Err
	}
	var lErr *os.LinkError
	if errors.As(err, &lErr) && lErr.Err != nil {
		return lErr.Err
	}
	var sErr *os.SyscallError
	if errors.As(err, &sErr) && sErr.Err != nil {
		return sErr.Err
	}
	return err
}

//Exists probes the path the way access(2) with F_OK does: symlinks are followed, so a dangling link does not exist.
//Not existing is reported as (false, nil); any other failure of the probe is returned as an error.
func Exists(path string) (bool, error) {
	if err := access(path); err != nil {
		if IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

//ReadDirBatches lists the directory in batches of the given size and passes each batch to fn.
//The directory handle is open only for the duration of this call.
func ReadDirBatches(path string, batchSize int, fn func([]fs.DirEntry) error) error {
	dir, err := os.Open(path)
	if err != nil {
		return err
	}
	defer dir.Close()

	for {
		entries, err := dir.ReadDir(batchSize)
		if len(entries) > 0 {
			if fnErr := fn(entries); fnErr != nil {
				return fnErr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
