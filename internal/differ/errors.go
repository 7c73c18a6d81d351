package differ

import "errors"

//ErrFileChanged means an entry listed as a regular file is something else by the time it is examined.
var ErrFileChanged = errors.New("File changed")

const (
	opRead   = "Failed to read"
	opAccess = "Failed to access"
)

//OpError is a fatal failure of a filesystem operation on one path, it aborts the whole run.
type OpError struct {
	Op   string // empty for plain stat failures
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e.Op == "" {
		return e.Path + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }
