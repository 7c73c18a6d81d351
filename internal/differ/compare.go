package differ

import (
	"fmt"
	"os"

	"dirdiff/internal/model"
	"dirdiff/pkg/helpers/iout"
)

//checkSame compares one non-directory entry of the walked tree with the same path in the other tree.
//checkSize is set when the listing said the entry is a regular file.
//In the reverse pass, and for entries that are not regular files, only the existence of pathOther is checked.
//Note that Missing is reported with pathOther while Differs is reported with pathSelf.
func (d *Differ) checkSame(pathSelf, pathOther string, firstPass, checkSize bool) (bool, error) {
	if !firstPass || !checkSize {
		exists, err := iout.Exists(pathOther)
		if err != nil {
			return false, &OpError{Op: opAccess, Path: pathOther, Err: iout.Cause(err)}
		}
		if exists {
			return false, nil
		}
		return true, d.sink.Report(model.NewMissing(pathOther))
	}

	self, err := lstat(pathSelf)
	if err != nil {
		return false, &OpError{Path: pathSelf, Err: iout.Cause(err)}
	}
	if !self.IsRegular() {
		return false, fmt.Errorf("%w: %s", ErrFileChanged, pathSelf)
	}

	other, err := lstat(pathOther)
	if err != nil && !iout.IsNotExist(err) {
		return false, &OpError{Path: pathOther, Err: iout.Cause(err)}
	}

	switch {
	case !other.Exists():
		return true, d.sink.Report(model.NewMissing(pathOther))
	case !self.SameAs(other): // includes other not being a regular file
		return true, d.sink.Report(model.NewDiffers(pathSelf))
	}
	return false, nil
}

//lstat returns a zero (absent) stat together with the error if the path cannot be examined.
func lstat(path string) (model.EntryStat, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return model.EntryStat{Kind: model.KindAbsent}, err
	}
	return model.StatOf(info), nil
}
