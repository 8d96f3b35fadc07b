// Package apperr carries the business error taxonomy shared by services and
// controllers. Controllers extract the code with CodeOf and map it to an HTTP
// status; anything without a code falls through to the terminal error handler.
package apperr

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeDuplicateKey       Code = "DUPLICATE_KEY"
	CodeInvalidID          Code = "INVALID_ID"
	CodeNotFound           Code = "NOT_FOUND"
	CodeInsufficientCopies Code = "INSUFFICIENT_COPIES"
	CodeUnavailable        Code = "UNAVAILABLE"
)

type Error struct {
	Code    Code
	Message string
	Details any
}

func (e *Error) Error() string { return e.Message }

// CodeOf extracts the business code, or "" for unclassified errors.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// DetailsOf returns the structured details attached to a business error.
func DetailsOf(err error) any {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Details
	}
	return nil
}

// Validation reports every violated constraint keyed by field name.
func Validation(fields map[string]string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: "Validation failed",
		Details: map[string]any{"name": "ValidationError", "errors": fields},
	}
}

// Duplicate reports a unique-constraint violation on field/value.
func Duplicate(field, value string) *Error {
	return &Error{
		Code:    CodeDuplicateKey,
		Message: "Duplicate entry",
		Details: map[string]any{
			"message": field + " already exists",
			"field":   field,
			"value":   value,
		},
	}
}

func InvalidID() *Error {
	return &Error{Code: CodeInvalidID, Message: "Invalid book ID format"}
}

func NotFound(what string) *Error {
	return &Error{Code: CodeNotFound, Message: what + " not found"}
}

func InsufficientCopies(remaining int) *Error {
	return &Error{
		Code:    CodeInsufficientCopies,
		Message: fmt.Sprintf("Not enough copies available. Only %d copies remaining.", remaining),
	}
}

func Unavailable() *Error {
	return &Error{Code: CodeUnavailable, Message: "Book is currently not available for borrowing"}
}
