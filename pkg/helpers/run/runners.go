package run

import (
	"fmt"
	"runtime/debug"
)

//PanicError is returned by WithError when fn panicked with a value that is not an error.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

//WithError calls fn and turns a panic inside it into a returned error.
//A panic with an error value returns that error as is.
func WithError(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if perr, ok := p.(error); ok {
				err = perr
			} else {
				err = &PanicError{Value: p, Stack: debug.Stack()}
			}
		}
	}()

	return fn()
}
