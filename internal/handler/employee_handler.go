package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/empmgmt/employee-backend/internal/dto"
	"github.com/empmgmt/employee-backend/internal/response"
	"github.com/empmgmt/employee-backend/internal/service"
	"github.com/empmgmt/employee-backend/internal/validator"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// GetAll godoc
// GET /employee
func (h *EmployeeHandler) GetAll(c *gin.Context) {
	employees, err := h.employeeService.GetAll(c.Request.Context())
	if err != nil {
		failFromErr(c, err)
		return
	}

	if employees == nil {
		employees = []dto.EmployeeDTO{}
	}

	response.Success(c, http.StatusOK, gin.H{"employees": employees})
}

// GetByID godoc
// GET /employee/:id
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"employee": employee})
}

// Create godoc
// POST /employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.EmployeeDTO
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	created, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"employee": created})
}

// Update godoc
// PUT /employee/:id
// Rejects the request before touching the store when the body ID does not
// match the path ID.
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req dto.EmployeeDTO
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if req.ID != id {
		response.Fail(c, http.StatusBadRequest, response.ErrIDMismatch)
		return
	}

	updated, err := h.employeeService.Update(c.Request.Context(), req)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"employee": updated})
}

// Delete godoc
// DELETE /employee/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "employee deleted successfully"})
}
