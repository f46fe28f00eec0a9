package domain

import (
	"errors"
	"fmt"
)

// Kind classifies expected failures so the transport can map them to statuses
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindDuplicateEntity
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindDuplicateEntity:
		return "duplicate_entity"
	case KindValidation:
		return "validation"
	}
	return "unknown"
}

// Error is an expected domain failure. Message is safe to show to callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports that a referenced entity does not exist.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Duplicate reports a uniqueness violation; cause is the store error, if any.
func Duplicate(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindDuplicateEntity, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Invalid reports input that cannot be processed.
func Invalid(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsDuplicate(err error) bool  { return KindOf(err) == KindDuplicateEntity }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
