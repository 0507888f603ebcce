package core

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange        = errors.New("out of range")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrRefusedQuit       = errors.New("no write since last change (add ! to override)")
	ErrInvalidTransition = errors.New("invalid mode transition")
)

type ErrorId int

const (
	ErrOutOfRangeId ErrorId = iota
	ErrUnknownCommandId
	ErrRefusedQuitId
	ErrInvalidTransitionId
	ErrFailedToSaveId
	ErrFailedToYankId
)

// Error pairs a sentinel with an identifier collaborators can switch on
// without string matching.
type Error struct {
	id  ErrorId
	err error
}

func NewError(id ErrorId, err error) *Error {
	return &Error{id: id, err: err}
}

func (e *Error) ID() ErrorId {
	return e.id
}

func (e *Error) Error() string {
	if e.err == nil {
		return fmt.Sprintf("error %d", e.id)
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

func outOfRange(op, format string, args ...any) error {
	return NewError(ErrOutOfRangeId, fmt.Errorf("%s: %w: "+format, append([]any{op, ErrOutOfRange}, args...)...))
}
