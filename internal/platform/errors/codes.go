// Package errors provides structured domain errors that map onto HTTP
// responses and catalog message keys.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// User errors
	CodeUserNotFound    Code = "USER_NOT_FOUND"
	CodeUserIDEmpty     Code = "USER_ID_EMPTY"
	CodeUserDuplicateID Code = "USER_DUPLICATE_ID"
	CodeStatusInvalid   Code = "STATUS_INVALID"

	// Request errors
	CodeFormInvalid Code = "FORM_INVALID"
)

// HTTPStatus maps the code to the response status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeUserNotFound:
		return http.StatusNotFound
	case CodeStatusInvalid, CodeFormInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// MessageKey returns the catalog key for the user-facing message.
func (c Code) MessageKey() string {
	switch c {
	case CodeUserNotFound:
		return "error.user_not_found"
	case CodeStatusInvalid:
		return "error.status_invalid"
	case CodeFormInvalid:
		return "error.form_invalid"
	default:
		return "error.unknown"
	}
}
