// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-level error contract shared by the
// service layer and the transport handlers.
//
// Every failure that leaves the server is reduced to an [ErrorResponse]
// carrying a human-readable message and one of the Code* values. Services
// construct classified errors with the helpers in this package; handlers call
// [Normalize] and never inspect internal error chains themselves.
package app

const (
	// MsgInternalServerError is returned for every unclassified failure.
	// Details of the underlying error are logged, never sent to the client.
	MsgInternalServerError = "internal server error"

	// MsgAuthenticationRequired is returned by the authorization gate when a
	// protected operation is invoked without a resolved principal.
	MsgAuthenticationRequired = "authentication required, please login first"

	// MsgUserNotFound is returned when no principal matches the login identifier.
	MsgUserNotFound = "invalid credentials: user not found"

	// MsgIncorrectPassword is returned when the password does not match the
	// stored hash.
	MsgIncorrectPassword = "invalid credentials: incorrect password"

	// MsgUsernameAlreadyExists is returned when signup collides on username.
	MsgUsernameAlreadyExists = "an account with this username already exists"

	// MsgEmailAlreadyExists is returned when signup collides on email.
	MsgEmailAlreadyExists = "an account with this email already exists"

	// MsgEmployeeEmailAlreadyExists is returned when an employee write
	// collides on email.
	MsgEmployeeEmailAlreadyExists = "an employee with this email already exists"

	// MsgEmployeeConstraint is returned when the storage layer rejects an
	// employee write that passed the field rules.
	MsgEmployeeConstraint = "employee record violates storage constraints"

	// MsgImageUploadFailed is returned when the asset host fails to store an
	// image.
	MsgImageUploadFailed = "image upload failed"

	// MsgNoFileUploaded is returned when the upload endpoint receives no file.
	MsgNoFileUploaded = "no file uploaded"

	// MsgOnlyImagesAllowed is returned when the uploaded file is not an image.
	MsgOnlyImagesAllowed = "only image files are allowed"

	// MsgFileTooLarge is returned when the uploaded file exceeds the size limit.
	MsgFileTooLarge = "file is too large"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgBodyTooLarge is returned when a JSON body exceeds the server limit.
	MsgBodyTooLarge = "request body is too large"

	// MsgRouteNotFound is returned for unknown routes and for known routes
	// called with an unsupported method.
	MsgRouteNotFound = "route not found"
)
