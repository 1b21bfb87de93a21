package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure a conversion or export flow can report.
type ErrorKind string

const (
	KindMissingField          ErrorKind = "MissingField"
	KindWrongDecimalSeparator ErrorKind = "WrongDecimalSeparator"
	KindNotNumeric            ErrorKind = "NotNumeric"
	KindBadFormat             ErrorKind = "BadFormat"
	KindTransform             ErrorKind = "TransformError"
	KindNoPointsToExport      ErrorKind = "NoPointsToExport"
	KindFileWrite             ErrorKind = "FileWriteError"
	KindScreenshot            ErrorKind = "ScreenshotError"
	KindInternal              ErrorKind = "Internal"
)

// Error is the typed failure returned across the service boundary.
// Message is meant for the user; Err keeps the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Field   string
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

func NewError(kind ErrorKind, field, msg string) *Error {
	return &Error{Kind: kind, Field: field, Message: msg}
}

func WrapError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// UserMessage returns the text shown on the message surface for err.
func UserMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return fmt.Sprintf("An error occurred: %v", err)
}
