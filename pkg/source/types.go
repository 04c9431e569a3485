// Package source enumerates the files behind search paths and reads their contents.
package source

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound is returned for a search path that does not exist.
	ErrPathNotFound = errors.New("no such file or directory")

	// ErrInvalidEncoding is returned for file contents that are not valid UTF-8.
	ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")
)

// Target is one enumerated file, or the failure met while enumerating.
type Target struct {
	// Path is the file path, or the path that failed when Err is set.
	Path string
	// Err is a *PathError or *ReadError for a path that cannot be searched.
	Err error
}

// PathError reports a search path that cannot be resolved.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// ReadError reports a file or directory whose contents cannot be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
