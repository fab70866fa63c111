package system

import (
	"errors"
	"fmt"
)

// IOError records a failed file system operation and the path it touched.
// It is the only error kind the fixture tool produces at the disk boundary.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOFailure reports whether err, or anything it wraps, is an *IOError
func IsIOFailure(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
