package dataset

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks every failure to produce a Store: the file is
// missing, unreadable, or not shaped like a scored dataset.
var ErrUnavailable = errors.New("dataset unavailable")

// LoadError reports why the dataset at Path could not be loaded. It matches
// both ErrUnavailable and the underlying cause under errors.Is.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error { return []error{ErrUnavailable, e.Err} }

func loadErr(path string, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		return err
	}
	return &LoadError{Path: path, Err: err}
}
