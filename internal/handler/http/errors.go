// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request bodies. They are wrapped
// into classified app errors before being written to the client.
var (
	// ErrEmptyBody is returned by decodeJSON when the request carries no body.
	ErrEmptyBody = errors.New("empty request body")

	// ErrBodyTooLarge is returned when a body exceeds the limit installed by
	// limitBody.
	ErrBodyTooLarge = errors.New("request body exceeds the configured limit")
)
