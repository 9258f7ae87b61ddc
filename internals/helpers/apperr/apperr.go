// Package apperr berisi taksonomi error domain yang dipetakan ke HTTP
// oleh helper.FromAppError.
package apperr

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindUnknown Kind = iota
	// KindConflict: transisi tidak valid untuk state sekarang.
	KindConflict
	// KindNotFound: transisi butuh state yang tidak ada.
	KindNotFound
	// KindValidation: input rusak / kurang.
	KindValidation
	// KindPersistence: storage tidak tersedia / write gagal. Retryable.
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindConflict:
		return "ConflictError"
	case KindNotFound:
		return "NotFoundError"
	case KindValidation:
		return "ValidationError"
	case KindPersistence:
		return "PersistenceError"
	default:
		return "UnknownError"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable true hanya untuk kegagalan storage; sisanya butuh aksi user.
func (e *Error) Retryable() bool { return e.Kind == KindPersistence }

func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

func Persistence(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, Err: err}
}

// KindOf mengembalikan KindUnknown kalau err bukan *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

func Is(err error, k Kind) bool { return err != nil && KindOf(err) == k }
