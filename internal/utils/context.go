// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-staff-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthCtxKey is the key under which the per-request [models.AuthContext]
// is stored.
var AuthCtxKey = contextKey("authContext")

// WithAuthContext returns a copy of ctx carrying authCtx.
func WithAuthContext(ctx context.Context, authCtx models.AuthContext) context.Context {
	return context.WithValue(ctx, AuthCtxKey, authCtx)
}

// GetAuthContext retrieves the [models.AuthContext] stored in ctx.
//
// A context without one is treated as anonymous, so the result is always
// usable by the authorization gate.
func GetAuthContext(ctx context.Context) models.AuthContext {
	authCtx, ok := ctx.Value(AuthCtxKey).(models.AuthContext)
	if !ok {
		return models.Anonymous()
	}
	return authCtx
}
