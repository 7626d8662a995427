package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
	"github.com/MKhiriev/go-staff-keeper/internal/validators"
	"github.com/MKhiriev/go-staff-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "0192f1c2-0000-7000-8000-000000000001"

func testEmployee() models.Employee {
	return models.Employee{
		EmployeeID:    testEmployeeID,
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		Designation:   "Engineer",
		Salary:        5000,
		DateOfJoining: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Department:    "R&D",
	}
}

func newEmployeeRouter(t *testing.T, employees service.EmployeeService) http.Handler {
	return newTestRouter(t, &service.Services{EmployeeService: employees})
}

func TestListEmployees_Success(t *testing.T) {
	employees := &fakeEmployeeService{
		list: func(_ context.Context) ([]models.Employee, error) {
			return []models.Employee{testEmployee()}, nil
		},
	}

	rr := doRequest(t, newEmployeeRouter(t, employees), http.MethodGet, "/api/employees", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Employee
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, testEmployeeID, got[0].EmployeeID)
}

func TestListEmployees_EmptyIsArray(t *testing.T) {
	employees := &fakeEmployeeService{
		list: func(_ context.Context) ([]models.Employee, error) { return nil, nil },
	}

	rr := doRequest(t, newEmployeeRouter(t, employees), http.MethodGet, "/api/employees", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestSearchEmployees_PassesFilter(t *testing.T) {
	var received models.SearchFilter
	employees := &fakeEmployeeService{
		search: func(_ context.Context, filter models.SearchFilter) ([]models.Employee, error) {
			received = filter
			return []models.Employee{testEmployee()}, nil
		},
	}

	rr := doRequest(t, newEmployeeRouter(t, employees), http.MethodGet,
		"/api/employees/search?designation=eng&department=r%26d", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.SearchFilter{Designation: "eng", Department: "r&d"}, received)
}

func TestSearchEmployees_NoFilter(t *testing.T) {
	employees := &fakeEmployeeService{
		search: func(_ context.Context, _ models.SearchFilter) ([]models.Employee, error) {
			return nil, app.InvalidInput(validators.ErrSearchFilterRequired.Error(), validators.ErrSearchFilterRequired)
		},
	}

	rr := doRequest(t, newEmployeeRouter(t, employees), http.MethodGet, "/api/employees/search", "", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, validators.ErrSearchFilterRequired.Error(), decodeErrorBody(t, rr).Message)
}

func TestGetEmployee(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "not found", serviceErr: app.NotFound("no employee found with ID: "+testEmployeeID, nil), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employees := &fakeEmployeeService{
				get: func(_ context.Context, id string) (models.Employee, error) {
					assert.Equal(t, testEmployeeID, id)
					if tt.serviceErr != nil {
						return models.Employee{}, tt.serviceErr
					}
					return testEmployee(), nil
				},
			}

			rr := doRequest(t, newEmployeeRouter(t, employees), http.MethodGet, "/api/employees/"+testEmployeeID, "", nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.serviceErr != nil {
				body := decodeErrorBody(t, rr)
				assert.Equal(t, app.CodeNotFound, body.Code)
				assert.Contains(t, body.Message, testEmployeeID)
			}
		})
	}
}

func TestAddEmployee_Success(t *testing.T) {
	var received models.EmployeeInput
	employees := &fakeEmployeeService{
		add: func(_ context.Context, input models.EmployeeInput) (models.Employee, error) {
			received = input
			return testEmployee(), nil
		},
	}

	body := `{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","gender":"Female",
		"designation":"Engineer","salary":5000,"date_of_joining":"2024-01-15","department":"R&D"}`
	rr := doRequest(t, newEmployeeRouter(t, employees), http.MethodPost, "/api/employees", body, nil)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Jane", received.FirstName)
	assert.Equal(t, "Female", received.Gender)
	assert.Equal(t, 5000.0, received.Salary)
	assert.Equal(t, "2024-01-15", received.DateOfJoining)

	var got models.Employee
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, testEmployeeID, got.EmployeeID)
}

func TestAddEmployee_UploadError(t *testing.T) {
	employees := &fakeEmployeeService{
		add: func(_ context.Context, _ models.EmployeeInput) (models.Employee, error) {
			return models.Employee{}, app.UploadFailed(assert.AnError)
		},
	}

	rr := doRequest(t, newEmployeeRouter(t, employees), http.MethodPost, "/api/employees", `{"first_name":"Jane"}`, nil)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	body := decodeErrorBody(t, rr)
	assert.Equal(t, app.CodeUploadError, body.Code)
	assert.Equal(t, app.MsgImageUploadFailed, body.Message)
}

func TestUpdateEmployee_PartialBody(t *testing.T) {
	var receivedID string
	var received models.EmployeeUpdate
	employees := &fakeEmployeeService{
		update: func(_ context.Context, id string, update models.EmployeeUpdate) (models.Employee, error) {
			receivedID = id
			received = update
			e := testEmployee()
			e.Salary = *update.Salary
			return e, nil
		},
	}

	rr := doRequest(t, newEmployeeRouter(t, employees), http.MethodPatch, "/api/employees/"+testEmployeeID, `{"salary":7000}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testEmployeeID, receivedID)
	require.NotNil(t, received.Salary)
	assert.Equal(t, 7000.0, *received.Salary)
	assert.Nil(t, received.FirstName)
	assert.Nil(t, received.Email)
}

func TestDeleteEmployee_Success(t *testing.T) {
	employees := &fakeEmployeeService{
		delete: func(_ context.Context, id string) (string, error) {
			return `Employee "Jane Doe" deleted successfully.`, nil
		},
	}

	rr := doRequest(t, newEmployeeRouter(t, employees), http.MethodDelete, "/api/employees/"+testEmployeeID, "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Employee \"Jane Doe\" deleted successfully."}`, rr.Body.String())
}

func TestEmployeeRoutes_AnonymousCallerIsRejected(t *testing.T) {
	inner := &fakeEmployeeService{
		list: func(_ context.Context) ([]models.Employee, error) {
			t.Fatal("inner service must not be reached")
			return nil, nil
		},
	}
	router := newEmployeeRouter(t, service.NewEmployeeAuthorizationService().Wrap(inner))

	rr := doRequest(t, router, http.MethodGet, "/api/employees", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	body := decodeErrorBody(t, rr)
	assert.Equal(t, app.CodeUnauthenticated, body.Code)
	assert.Equal(t, app.MsgAuthenticationRequired, body.Message)
}

func TestEmployeeRoutes_ResolvedPrincipalReachesService(t *testing.T) {
	inner := &fakeEmployeeService{
		list: func(ctx context.Context) ([]models.Employee, error) {
			user, ok := utils.GetAuthContext(ctx).Principal()
			require.True(t, ok)
			assert.Equal(t, authedUser().UserID, user.UserID)
			return []models.Employee{}, nil
		},
	}
	auth := &fakeAuthService{
		resolve: func(_ context.Context, header string) models.AuthContext {
			if header == "Bearer good-token" {
				return models.Authenticated(authedUser())
			}
			return models.Anonymous()
		},
	}
	router := newTestRouter(t, &service.Services{
		AuthService:     auth,
		EmployeeService: service.NewEmployeeAuthorizationService().Wrap(inner),
	})

	rr := doRequest(t, router, http.MethodGet, "/api/employees", "", map[string]string{"Authorization": "Bearer good-token"})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/api/employees", "", map[string]string{"Authorization": "Bearer bad-token"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
