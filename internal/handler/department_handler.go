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

type DepartmentHandler struct {
	departmentService service.DepartmentService
}

func NewDepartmentHandler(departmentService service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// GetAll godoc
// GET /department
func (h *DepartmentHandler) GetAll(c *gin.Context) {
	departments, err := h.departmentService.GetAll(c.Request.Context())
	if err != nil {
		failFromErr(c, err)
		return
	}

	if departments == nil {
		departments = []dto.DepartmentDTO{}
	}

	response.Success(c, http.StatusOK, gin.H{"departments": departments})
}

// GetByID godoc
// GET /department/:id
func (h *DepartmentHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	department, err := h.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"department": department})
}

// Create godoc
// POST /department
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.DepartmentDTO
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	created, err := h.departmentService.Create(c.Request.Context(), req)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"department": created})
}

// Update godoc
// PUT /department/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req dto.DepartmentDTO
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if req.ID != id {
		response.Fail(c, http.StatusBadRequest, response.ErrIDMismatch)
		return
	}

	updated, err := h.departmentService.Update(c.Request.Context(), req)
	if err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"department": updated})
}

// Delete godoc
// DELETE /department/:id
// Deletion is rejected with 409 while employees still reference the
// department.
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.departmentService.Delete(c.Request.Context(), id); err != nil {
		failFromErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "department deleted successfully"})
}
