// Package webui renders the server-side front-end. It consumes the API
// exclusively through the typed HTTP clients; all persistence stays on the
// other side of the service-token boundary.
package webui

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/empmgmt/employee-backend/internal/client"
	"github.com/empmgmt/employee-backend/internal/dto"
)

const hireDateForm = "2006-01-02"

type Handlers struct {
	employees   *client.EmployeeClient
	departments *client.DepartmentClient
	log         zerolog.Logger
}

func NewHandlers(employees *client.EmployeeClient, departments *client.DepartmentClient, log zerolog.Logger) *Handlers {
	return &Handlers{
		employees:   employees,
		departments: departments,
		log:         log.With().Str("component", "webui").Logger(),
	}
}

// Register wires the web routes onto the engine.
func (h *Handlers) Register(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/employees")
	})

	r.GET("/employees", h.listEmployees)
	r.GET("/employees/new", h.newEmployeeForm)
	r.POST("/employees", h.createEmployee)
	r.GET("/employees/:id/edit", h.editEmployeeForm)
	r.POST("/employees/:id", h.updateEmployee)
	r.POST("/employees/:id/delete", h.deleteEmployee)

	r.GET("/departments", h.listDepartments)
	r.GET("/departments/new", h.newDepartmentForm)
	r.POST("/departments", h.createDepartment)
	r.GET("/departments/:id/edit", h.editDepartmentForm)
	r.POST("/departments/:id", h.updateDepartment)
	r.POST("/departments/:id/delete", h.deleteDepartment)
}

func (h *Handlers) listEmployees(c *gin.Context) {
	employees, err := h.employees.GetAll(c.Request.Context())
	if err != nil {
		h.renderError(c, "employees", err)
		return
	}
	c.HTML(http.StatusOK, "employees.html", gin.H{"Employees": employees})
}

func (h *Handlers) newEmployeeForm(c *gin.Context) {
	departments, err := h.departments.GetAll(c.Request.Context())
	if err != nil {
		h.renderError(c, "employees", err)
		return
	}
	c.HTML(http.StatusOK, "employee_form.html", gin.H{
		"Departments": departments,
		"Action":      "/employees",
	})
}

func (h *Handlers) createEmployee(c *gin.Context) {
	d, err := employeeFromForm(c, 0)
	if err != nil {
		h.renderError(c, "employees", err)
		return
	}
	if _, err := h.employees.Create(c.Request.Context(), d); err != nil {
		h.renderError(c, "employees", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/employees")
}

func (h *Handlers) editEmployeeForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/employees")
		return
	}
	employee, err := h.employees.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, "employees", err)
		return
	}
	departments, err := h.departments.GetAll(c.Request.Context())
	if err != nil {
		h.renderError(c, "employees", err)
		return
	}
	c.HTML(http.StatusOK, "employee_form.html", gin.H{
		"Employee":    employee,
		"Departments": departments,
		"Action":      "/employees/" + c.Param("id"),
	})
}

func (h *Handlers) updateEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/employees")
		return
	}
	d, err := employeeFromForm(c, id)
	if err != nil {
		h.renderError(c, "employees", err)
		return
	}
	if _, err := h.employees.Update(c.Request.Context(), d); err != nil {
		h.renderError(c, "employees", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/employees")
}

func (h *Handlers) deleteEmployee(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/employees")
		return
	}
	if err := h.employees.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, "employees", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/employees")
}

func (h *Handlers) listDepartments(c *gin.Context) {
	departments, err := h.departments.GetAll(c.Request.Context())
	if err != nil {
		h.renderError(c, "departments", err)
		return
	}
	c.HTML(http.StatusOK, "departments.html", gin.H{"Departments": departments})
}

func (h *Handlers) newDepartmentForm(c *gin.Context) {
	c.HTML(http.StatusOK, "department_form.html", gin.H{"Action": "/departments"})
}

func (h *Handlers) createDepartment(c *gin.Context) {
	d := dto.DepartmentDTO{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}
	if _, err := h.departments.Create(c.Request.Context(), d); err != nil {
		h.renderError(c, "departments", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/departments")
}

func (h *Handlers) editDepartmentForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/departments")
		return
	}
	department, err := h.departments.GetByID(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, "departments", err)
		return
	}
	c.HTML(http.StatusOK, "department_form.html", gin.H{
		"Department": department,
		"Action":     "/departments/" + c.Param("id"),
	})
}

func (h *Handlers) updateDepartment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/departments")
		return
	}
	d := dto.DepartmentDTO{
		ID:          id,
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}
	if _, err := h.departments.Update(c.Request.Context(), d); err != nil {
		h.renderError(c, "departments", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/departments")
}

func (h *Handlers) deleteDepartment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/departments")
		return
	}
	if err := h.departments.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, "departments", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/departments")
}

func (h *Handlers) renderError(c *gin.Context, section string, err error) {
	h.log.Error().Err(err).Str("section", section).Msg("Web request failed")
	c.HTML(statusFor(err), "error.html", gin.H{
		"Section": section,
		"Message": userMessage(err),
	})
}

// statusFor mirrors the API's status for the typed client conditions so the
// error page carries an honest code for clients and monitoring.
func statusFor(err error) int {
	switch {
	case errors.Is(err, client.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, client.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, client.ErrNotFound):
		return "The requested record was not found."
	case errors.Is(err, client.ErrConflict):
		return "The change conflicts with existing data."
	default:
		return "Something went wrong. Please try again later."
	}
}

func employeeFromForm(c *gin.Context, id int) (dto.EmployeeDTO, error) {
	departmentID, err := strconv.Atoi(c.PostForm("department_id"))
	if err != nil {
		return dto.EmployeeDTO{}, err
	}
	hireDate, err := time.Parse(hireDateForm, c.PostForm("hire_date"))
	if err != nil {
		return dto.EmployeeDTO{}, err
	}
	return dto.EmployeeDTO{
		ID:           id,
		Code:         c.PostForm("code"),
		Name:         c.PostForm("name"),
		Email:        c.PostForm("email"),
		HireDate:     hireDate,
		DepartmentID: departmentID,
	}, nil
}
