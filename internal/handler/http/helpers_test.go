package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
	"github.com/MKhiriev/go-staff-keeper/models"
	"github.com/stretchr/testify/require"
)

// ---- Fake services ----

type fakeAuthService struct {
	signup  func(ctx context.Context, request models.SignupRequest) (models.User, error)
	login   func(ctx context.Context, credentials models.Credentials) (models.AuthPayload, error)
	resolve func(ctx context.Context, header string) models.AuthContext
}

func (f *fakeAuthService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return f.signup(ctx, request)
}

func (f *fakeAuthService) Login(ctx context.Context, credentials models.Credentials) (models.AuthPayload, error) {
	return f.login(ctx, credentials)
}

func (f *fakeAuthService) Resolve(ctx context.Context, header string) models.AuthContext {
	if f.resolve == nil {
		return models.Anonymous()
	}
	return f.resolve(ctx, header)
}

type fakeEmployeeService struct {
	list   func(ctx context.Context) ([]models.Employee, error)
	get    func(ctx context.Context, id string) (models.Employee, error)
	search func(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error)
	add    func(ctx context.Context, input models.EmployeeInput) (models.Employee, error)
	update func(ctx context.Context, id string, update models.EmployeeUpdate) (models.Employee, error)
	delete func(ctx context.Context, id string) (string, error)
}

func (f *fakeEmployeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return f.list(ctx)
}

func (f *fakeEmployeeService) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	return f.get(ctx, id)
}

func (f *fakeEmployeeService) SearchEmployees(ctx context.Context, filter models.SearchFilter) ([]models.Employee, error) {
	return f.search(ctx, filter)
}

func (f *fakeEmployeeService) AddEmployee(ctx context.Context, input models.EmployeeInput) (models.Employee, error) {
	return f.add(ctx, input)
}

func (f *fakeEmployeeService) UpdateEmployee(ctx context.Context, id string, update models.EmployeeUpdate) (models.Employee, error) {
	return f.update(ctx, id, update)
}

func (f *fakeEmployeeService) DeleteEmployee(ctx context.Context, id string) (string, error) {
	return f.delete(ctx, id)
}

type fakeUploadService struct {
	upload func(ctx context.Context, payload models.ImagePayload) (models.Asset, error)
}

func (f *fakeUploadService) UploadImage(ctx context.Context, payload models.ImagePayload) (models.Asset, error) {
	return f.upload(ctx, payload)
}

type fakeAppInfoService struct {
	info models.InfoResponse
}

func (f *fakeAppInfoService) GetAppInfo(_ context.Context) models.InfoResponse {
	return f.info
}

// ---- Helpers ----

var testServerConfig = config.Server{
	HTTPAddress:   ":8080",
	MaxBodySize:   1 << 20,
	MaxUploadSize: 1 << 10,
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = &fakeAuthService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{}
	}

	return NewHandler(services, testServerConfig, logger.Nop()).Init()
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) app.ErrorResponse {
	t.Helper()

	var response app.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	return response
}

func authedUser() models.User {
	return models.User{UserID: "0192f1c2-8a3b-7c4d-9e5f-0a1b2c3d4e5f", Username: "alice", Email: "alice@example.com"}
}
