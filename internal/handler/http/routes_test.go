package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
	"github.com/MKhiriev/go-staff-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RootInfo(t *testing.T) {
	info := models.InfoResponse{
		Message:   "Employee Management System API",
		Version:   "v1.2.3",
		Employees: "/api/employees",
		Users:     "/api/user",
		Upload:    "/api/upload",
	}
	router := newTestRouter(t, &service.Services{AppInfoService: &fakeAppInfoService{info: info}})

	rr := doRequest(t, router, http.MethodGet, "/", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.InfoResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, info, got)
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	for _, path := range []string{"/api", "/api/unknown", "/api/user", "/api/employees/1/extra"} {
		t.Run(path, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodGet, path, "", nil)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			body := decodeErrorBody(t, rr)
			assert.Equal(t, app.CodeNotFound, body.Code)
			assert.Equal(t, app.MsgRouteNotFound, body.Message)
		})
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/user/login"},
		{http.MethodPut, "/api/user/signup"},
		{http.MethodPut, "/api/employees"},
		{http.MethodPut, "/api/employees/abc"},
		{http.MethodPost, "/api/employees/abc"},
		{http.MethodGet, "/api/upload"},
		{http.MethodPost, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := doRequest(t, router, tt.method, tt.path, "", nil)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, app.CodeNotFound, decodeErrorBody(t, rr).Code)
		})
	}
}

func TestInit_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rr := doRequest(t, router, http.MethodOptions, "/api/employees", "", map[string]string{
		"Origin":                         "https://frontend.example.com",
		"Access-Control-Request-Method":  http.MethodPatch,
		"Access-Control-Request-Headers": "Authorization, Content-Type",
	})

	assert.Less(t, rr.Code, 300)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestInit_CORSHeadersOnRegularRequest(t *testing.T) {
	router := newTestRouter(t, &service.Services{AppInfoService: &fakeAppInfoService{}})

	rr := doRequest(t, router, http.MethodGet, "/", "", map[string]string{"Origin": "https://frontend.example.com"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rr := doRequest(t, router, http.MethodGet, "/", "", nil)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	rr = doRequest(t, router, http.MethodGet, "/", "", map[string]string{traceIDHeader: "trace-123"})
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestInit_PublicRoutesIgnoreBadToken(t *testing.T) {
	auth := &fakeAuthService{
		resolve: func(_ context.Context, _ string) models.AuthContext { return models.Anonymous() },
		signup: func(_ context.Context, request models.SignupRequest) (models.User, error) {
			return models.User{UserID: "u-1", Username: request.Username}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	rr := doRequest(t, router, http.MethodPost, "/api/user/signup",
		`{"username":"bob","email":"bob@example.com","password":"secret1"}`,
		map[string]string{"Authorization": "Bearer expired"})

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestInit_RecoversFromPanic(t *testing.T) {
	employees := &fakeEmployeeService{
		list: func(_ context.Context) ([]models.Employee, error) { panic("boom") },
	}
	router := newTestRouter(t, &service.Services{EmployeeService: employees})

	rr := doRequest(t, router, http.MethodGet, "/api/employees", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
