// Package apperr carries the error taxonomy the HTTP layer maps onto the
// response envelope: validation errors are client-caused and carry a specific
// code, everything else collapses to a generic 500.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInternal              Code = "INTERNAL_SERVER_ERROR"
	CodeBadRequest            Code = "BAD_REQUEST"
	CodeValidation            Code = "VALIDATION_ERROR"
	CodeUnauthorized          Code = "UNAUTHORIZED"
	CodeForbidden             Code = "FORBIDDEN"
	CodeInvalidCredentials    Code = "INVALID_CREDENTIALS"
	CodeTokenExpired          Code = "TOKEN_EXPIRED"
	CodeTokenInvalid          Code = "TOKEN_INVALID"
	CodeUserAlreadyExists     Code = "USER_ALREADY_EXISTS"
	CodeRateLimitExceeded     Code = "RATE_LIMIT_EXCEEDED"
	CodeResourceNotFound      Code = "RESOURCE_NOT_FOUND"
	CodeResourceAlreadyExists Code = "RESOURCE_ALREADY_EXISTS"
	CodeInsufficientStock     Code = "INSUFFICIENT_STOCK"
	CodeInvalidOrderStatus    Code = "INVALID_ORDER_STATUS"
)

type Error struct {
	Code    Code
	Message string
	Status  int
	Field   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code Code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

func BadRequest(message string) *Error {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}

func Validation(message, field string) *Error {
	return &Error{Code: CodeValidation, Message: message, Status: http.StatusBadRequest, Field: field}
}

func NotFound(resource string) *Error {
	return New(CodeResourceNotFound, resource+" not found", http.StatusNotFound)
}

func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func Forbidden(message string) *Error {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func Conflict(code Code, message string) *Error {
	return New(code, message, http.StatusConflict)
}

func InsufficientStock(message string) *Error {
	return New(CodeInsufficientStock, message, http.StatusBadRequest)
}

func Internal(message string) *Error {
	return New(CodeInternal, message, http.StatusInternalServerError)
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var appErr *Error
	ok := errors.As(err, &appErr)
	return appErr, ok
}
