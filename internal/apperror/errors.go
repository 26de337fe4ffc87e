// Package apperror defines the error taxonomy of the accessor layer.
// Storage-engine errors (unique/foreign-key violations, missing rows) are
// translated into these sentinels at the service layer and never leak out.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDuplicateIdentity = errors.New("duplicate identity")
	ErrDuplicateEdge     = errors.New("duplicate edge")
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state")
)

func InvalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func DuplicateIdentity(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDuplicateIdentity, fmt.Sprintf(format, args...))
}

func DuplicateEdge(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDuplicateEdge, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func InvalidState(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}
