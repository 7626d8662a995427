// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This function overrides that behaviour: the caller gets
// the same NOT_FOUND error body as for an unknown route, so unsupported
// methods do not reveal which routes exist.
//
// The lookup uses [chi.Mux.Match], so parameterised patterns such as
// "/api/employees/{eid}" are matched the same way the router matches them.
// If the method turns out to be registered for the path, the request is
// forwarded to the router's normal ServeHTTP pipeline.
//
// Routes must be registered on router itself or through Group; mounted
// sub-routers would match every method here.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			writeError(w, r, app.NotFound(app.MsgRouteNotFound, nil))
			return
		}

		router.ServeHTTP(w, r)
	}
}
