package state

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRegistry is returned when a store is constructed without a registry.
	ErrNoRegistry = errors.New("state: registry unavailable")

	// ErrEmptyKey is returned when a store is constructed with a blank key.
	ErrEmptyKey = errors.New("state: registration key is empty")

	// ErrPathNotFound reports a path segment that does not resolve against the
	// current document. Missing structure is never created implicitly.
	ErrPathNotFound = errors.New("state: path does not resolve")

	// ErrTypeMismatch reports a value that cannot be stored at the addressed field.
	ErrTypeMismatch = errors.New("state: value type mismatch")
)

// PathError captures the path and the failing segment alongside the cause.
type PathError struct {
	Path    string
	Segment string
	Err     error
}

func (e *PathError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Segment == "" {
		return fmt.Sprintf("%v: path=%q", e.Err, e.Path)
	}
	return fmt.Sprintf("%v: path=%q segment=%q", e.Err, e.Path, e.Segment)
}

func (e *PathError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func notFound(path, segment string) error {
	return &PathError{Path: path, Segment: segment, Err: ErrPathNotFound}
}

func mismatch(path, segment string) error {
	return &PathError{Path: path, Segment: segment, Err: ErrTypeMismatch}
}
