package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nordrens-as/planning-api/internal/domain"
	"github.com/nordrens-as/planning-api/internal/service"
	"go.uber.org/zap"
)

type EmployeeHandler struct {
	employeeService *service.EmployeeService
	logger          *zap.Logger
}

func NewEmployeeHandler(employeeService *service.EmployeeService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, logger: logger}
}

// List godoc
// @Summary List employees
// @Tags Employees
// @Produce json
// @Success 200 {array} domain.Employee
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /employees [get]
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list employees", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list employees")
		return
	}

	respondJSON(w, http.StatusOK, employees)
}

// Create godoc
// @Summary Create an employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param request body domain.CreateEmployeeRequest true "Employee to create"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /employees [post]
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	emp, err := h.employeeService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create employee", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	respondJSON(w, http.StatusCreated, emp)
}
