package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the terminal outcomes of a cleaning run.
type ErrorKind int

const (
	InternalFailure ErrorKind = iota
	InvalidLimit
	InputNotFound
	ReadFailure
	WriteFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidLimit:
		return "InvalidLimit"
	case InputNotFound:
		return "InputNotFound"
	case ReadFailure:
		return "ReadFailure"
	case WriteFailure:
		return "WriteFailure"
	default:
		return "InternalFailure"
	}
}

// ExitCode returns the process exit status reported for the kind.
func (k ErrorKind) ExitCode() int {
	switch k {
	case InvalidLimit:
		return 2
	case InputNotFound:
		return 3
	case ReadFailure:
		return 4
	case WriteFailure:
		return 5
	default:
		return 1
	}
}

// Error is a classified failure, optionally tied to a file path.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case InputNotFound:
		return fmt.Sprintf("input file '%s' not found", e.Path)
	case ReadFailure:
		return fmt.Sprintf("error reading input file '%s': %v", e.Path, e.Err)
	case WriteFailure:
		return fmt.Sprintf("error writing output file '%s': %v", e.Path, e.Err)
	case InvalidLimit:
		return fmt.Sprintf("invalid limit: %v", e.Err)
	default:
		if e.Err == nil {
			return "internal failure"
		}
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified error.
func NewError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf reports the kind of err. Unclassified errors are internal failures.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return InternalFailure
}
