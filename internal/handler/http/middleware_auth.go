// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Every request passes through the session resolver here;
// whether a caller must be authenticated is decided by the service layer.
package http

import (
	"net/http"

	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
)

// authenticate resolves the "Authorization" header into a
// [models.AuthContext] via [service.AuthService.Resolve] and stores it in the
// request context under [utils.AuthCtxKey].
//
// The middleware never rejects a request. A missing, malformed or expired
// token simply yields an anonymous context, and protected operations refuse
// it further down with UNAUTHENTICATED. Public routes such as signup, login
// and upload therefore work with or without a token.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		authCtx := h.services.AuthService.Resolve(ctx, r.Header.Get("Authorization"))
		if user, ok := authCtx.Principal(); ok {
			logger.FromRequest(r).Debug().Str("user_id", user.UserID).Msg("request authenticated")
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAuthContext(ctx, authCtx)))
	})
}
