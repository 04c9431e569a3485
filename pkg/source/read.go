package source

import (
	"os"
	"unicode/utf8"
)

// ReadFile returns the whole contents of path as text.
// Contents that are not valid UTF-8 are rejected with ErrInvalidEncoding.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ReadError{Path: path, Err: ErrInvalidEncoding}
	}
	return string(data), nil
}
