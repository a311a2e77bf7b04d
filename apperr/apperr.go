package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Validation wraps ErrValidation with a message meant for the client.
func Validation(format string, args ...any) error {
	return &clientError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &clientError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) error {
	return &clientError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

func InvalidCredentials(format string, args ...any) error {
	return &clientError{kind: ErrInvalidCredentials, msg: fmt.Sprintf(format, args...)}
}

type clientError struct {
	kind error
	msg  string
}

func (e *clientError) Error() string { return e.msg }

func (e *clientError) Unwrap() error { return e.kind }

// StorageFault is a connectivity or statement failure reported by the database.
// Error returns the driver's message unchanged.
type StorageFault struct {
	Op  string
	Err error
}

func (e *StorageFault) Error() string { return e.Err.Error() }

func (e *StorageFault) Unwrap() error { return e.Err }

func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageFault{Op: op, Err: err}
}
