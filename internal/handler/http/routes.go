package http

import (
	"net/http"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const employeeIDParam = "eid"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging, h.authenticate)

	router.Get("/", h.getAppInfo)

	// account routes
	router.Group(func(r chi.Router) {
		r.Use(h.limitBody(h.maxBodySize))
		r.Post("/api/user/signup", h.signup)
		r.Post("/api/user/login", h.login)
	})

	// employee routes, the service layer rejects anonymous callers
	router.Group(func(r chi.Router) {
		r.Use(h.limitBody(h.maxBodySize))
		r.Get("/api/employees", h.listEmployees)
		r.Get("/api/employees/search", h.searchEmployees)
		r.Get("/api/employees/{"+employeeIDParam+"}", h.getEmployee)
		r.Post("/api/employees", h.addEmployee)
		r.Patch("/api/employees/{"+employeeIDParam+"}", h.updateEmployee)
		r.Delete("/api/employees/{"+employeeIDParam+"}", h.deleteEmployee)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.limitBody(h.maxUploadSize + multipartOverhead))
		r.Post("/api/upload", h.uploadImage)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, app.NotFound(app.MsgRouteNotFound, nil))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
