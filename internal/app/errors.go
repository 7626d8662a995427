// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the stable, client-visible classification of a failure.
type Code string

const (
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeBadUserInput    Code = "BAD_USER_INPUT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeUploadError     Code = "UPLOAD_ERROR"
	CodeInternal        Code = "INTERNAL_SERVER_ERROR"
)

// Error is a classified application error.
//
// Message is safe to show to clients. Err, when set, is the internal cause
// and only ever reaches logs.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// NewError constructs a classified error without an internal cause.
// It is mostly used to declare package-level sentinel errors.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unauthenticated reports a missing or rejected credential.
func Unauthenticated(message string) *Error {
	return &Error{Code: CodeUnauthenticated, Message: message}
}

// InvalidInput reports an argument that violates a field rule or a
// uniqueness constraint. cause may be nil.
func InvalidInput(message string, cause error) *Error {
	return &Error{Code: CodeBadUserInput, Message: message, Err: cause}
}

// NotFound reports an identifier that does not resolve to a record.
func NotFound(message string, cause error) *Error {
	return &Error{Code: CodeNotFound, Message: message, Err: cause}
}

// UploadFailed reports a failure of the asset host.
func UploadFailed(cause error) *Error {
	return &Error{Code: CodeUploadError, Message: MsgImageUploadFailed, Err: cause}
}

// Internal wraps an unclassified failure.
func Internal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: MsgInternalServerError, Err: cause}
}

// ErrorResponse is the only error shape that crosses the system boundary.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    Code   `json:"code"`
}

// Normalize converts any error into an [ErrorResponse].
//
// The outermost *Error in the chain decides the result. Errors without a
// classification become INTERNAL_SERVER_ERROR with a generic message.
func Normalize(err error) ErrorResponse {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code != "" {
		message := appErr.Message
		if appErr.Code == CodeInternal || message == "" {
			message = MsgInternalServerError
		}
		return ErrorResponse{Message: message, Code: appErr.Code}
	}

	return ErrorResponse{Message: MsgInternalServerError, Code: CodeInternal}
}

// HTTPStatus maps a code to the HTTP status used by the REST transport.
func HTTPStatus(code Code) int {
	switch code {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeBadUserInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUploadError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
