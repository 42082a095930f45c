package parser

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	ErrEmptyInput = errors.New("descriptor is empty")
	ErrNoServices = errors.New("descriptor declares no services")
)

// ParseError wraps a failure to read or decode a descriptor
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
