package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP layer can map it to a status
// code without string matching.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidState
	KindInvalidTransition
	KindValidation
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) error          { return &Error{Kind: KindNotFound, Msg: msg} }
func InvalidState(msg string) error      { return &Error{Kind: KindInvalidState, Msg: msg} }
func InvalidTransition(msg string) error { return &Error{Kind: KindInvalidTransition, Msg: msg} }
func Validation(msg string) error        { return &Error{Kind: KindValidation, Msg: msg} }

// Internal wraps a storage or collaborator fault that callers should
// treat as opaque.
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool          { return KindOf(err) == KindNotFound }
func IsInvalidState(err error) bool      { return KindOf(err) == KindInvalidState }
func IsInvalidTransition(err error) bool { return KindOf(err) == KindInvalidTransition }
func IsValidation(err error) bool        { return KindOf(err) == KindValidation }
