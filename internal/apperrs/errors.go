package apperrs

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so the HTTP layer can pick a status
// code without inspecting error strings.
type Kind string

const (
	KindValidation    Kind = "VALIDATION"
	KindExtraction    Kind = "EXTRACTION"
	KindSummarization Kind = "SUMMARIZATION"
	KindPersistence   Kind = "PERSISTENCE"
	KindNotFound      Kind = "NOT_FOUND"
)

// AppError carries a kind, a user-facing message and an optional cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err, or "" when err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// Sentinel errors used by the repository layer. Services translate them into
// AppError values with the appropriate kind.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)
