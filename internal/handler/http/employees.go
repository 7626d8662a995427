package http

import (
	"net/http"

	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.services.EmployeeService.ListEmployees(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, nonNil(employees), http.StatusOK)
}

func (h *Handler) searchEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.SearchFilter{
		Designation: query.Get("designation"),
		Department:  query.Get("department"),
	}

	employees, err := h.services.EmployeeService.SearchEmployees(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, nonNil(employees), http.StatusOK)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	employee, err := h.services.EmployeeService.GetEmployee(r.Context(), chi.URLParam(r, employeeIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, employee, http.StatusOK)
}

func (h *Handler) addEmployee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.EmployeeInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	employee, err := h.services.EmployeeService.AddEmployee(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("employee_id", employee.EmployeeID).Msg("employee added")
	writeResponse(w, r, employee, http.StatusCreated)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var update models.EmployeeUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	employee, err := h.services.EmployeeService.UpdateEmployee(r.Context(), chi.URLParam(r, employeeIDParam), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, employee, http.StatusOK)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	message, err := h.services.EmployeeService.DeleteEmployee(r.Context(), chi.URLParam(r, employeeIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, models.DeleteResponse{Message: message}, http.StatusOK)
}

// nonNil makes an empty result serialize as [] instead of null.
func nonNil(employees []models.Employee) []models.Employee {
	if employees == nil {
		return []models.Employee{}
	}
	return employees
}
