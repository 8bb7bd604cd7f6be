package merge

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoot is returned when the source path is not a directory.
	ErrInvalidRoot = errors.New("source is not a directory")
	// ErrNotText is wrapped by an IOError when a file is not valid UTF-8.
	ErrNotText = errors.New("content is not valid UTF-8 text")
)

// IOError reports a failure reading the tree or writing the report.
// Any IOError aborts the run.
type IOError struct {
	// Op names the failed step, e.g. "reading" or "writing report".
	Op string
	// Path is the file or directory involved.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioErr(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
