package params

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey means a required key is absent from a record.
	ErrMissingKey = errors.New("missing key")
	// ErrWrongShape means a key holds a value of the wrong type, such as a color that is not three numbers.
	ErrWrongShape = errors.New("wrong value shape")
	// ErrMalformed means a record could not be parsed at all.
	ErrMalformed = errors.New("malformed record")
	// ErrInvalid means a record parsed but describes a tree that cannot be drawn.
	ErrInvalid = errors.New("invalid parameters")
	// ErrInvalidName means a tree name cannot be mapped to a file in the store.
	ErrInvalidName = errors.New("invalid tree name")
)

// LoadError is returned when a tree's parameters cannot be read back.
// Nothing is drawn when loading fails.
type LoadError struct {
	// Name is the stored tree's name, if the record came from a Store.
	Name string
	// Key is the offending record key, if the failure is tied to one.
	Key string
	Err error
}

func (e *LoadError) Error() string {
	msg := "load tree"
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	}
	if e.Key != "" {
		msg += fmt.Sprintf(": key %q", e.Key)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SaveError is returned when a tree's parameters cannot be written.
type SaveError struct {
	Name string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save tree %q: %v", e.Name, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
