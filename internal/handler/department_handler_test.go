package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/empmgmt/employee-backend/internal/dto"
	"github.com/empmgmt/employee-backend/internal/repository"
	"github.com/empmgmt/employee-backend/internal/service"
)

type stubDepartmentService struct {
	getAll  func() ([]dto.DepartmentDTO, error)
	getByID func(id int) (dto.DepartmentDTO, error)
	create  func(d dto.DepartmentDTO) (dto.DepartmentDTO, error)
	update  func(d dto.DepartmentDTO) (dto.DepartmentDTO, error)
	delete  func(id int) error
}

func (s *stubDepartmentService) GetAll(context.Context) ([]dto.DepartmentDTO, error) {
	return s.getAll()
}
func (s *stubDepartmentService) GetByID(_ context.Context, id int) (dto.DepartmentDTO, error) {
	return s.getByID(id)
}
func (s *stubDepartmentService) Create(_ context.Context, d dto.DepartmentDTO) (dto.DepartmentDTO, error) {
	return s.create(d)
}
func (s *stubDepartmentService) Update(_ context.Context, d dto.DepartmentDTO) (dto.DepartmentDTO, error) {
	return s.update(d)
}
func (s *stubDepartmentService) Delete(_ context.Context, id int) error {
	return s.delete(id)
}

func departmentRouter(svc service.DepartmentService) *gin.Engine {
	r := gin.New()
	h := NewDepartmentHandler(svc)
	r.GET("/department", h.GetAll)
	r.GET("/department/:id", h.GetByID)
	r.POST("/department", h.Create)
	r.PUT("/department/:id", h.Update)
	r.DELETE("/department/:id", h.Delete)
	return r
}

func TestDepartmentGetAll(t *testing.T) {
	svc := &stubDepartmentService{
		getAll: func() ([]dto.DepartmentDTO, error) {
			return []dto.DepartmentDTO{{ID: 1, Name: "HR", Description: "Human Resources"}}, nil
		},
	}
	w := doJSON(t, departmentRouter(svc), http.MethodGet, "/department", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"HR"`)
}

func TestDepartmentGetByIDNotFound(t *testing.T) {
	svc := &stubDepartmentService{
		getByID: func(int) (dto.DepartmentDTO, error) {
			return dto.DepartmentDTO{}, repository.ErrNotFound
		},
	}
	w := doJSON(t, departmentRouter(svc), http.MethodGet, "/department/42", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDepartmentCreate(t *testing.T) {
	svc := &stubDepartmentService{
		create: func(d dto.DepartmentDTO) (dto.DepartmentDTO, error) {
			d.ID = 5
			return d, nil
		},
	}
	w := doJSON(t, departmentRouter(svc), http.MethodPost, "/department",
		dto.DepartmentDTO{Name: "Finance", Description: "Financial Department"})

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"id":5`)
}

func TestDepartmentCreateBindingFailure(t *testing.T) {
	svc := &stubDepartmentService{}
	w := doJSON(t, departmentRouter(svc), http.MethodPost, "/department",
		dto.DepartmentDTO{Name: ""})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestDepartmentUpdateIDMismatch(t *testing.T) {
	called := false
	svc := &stubDepartmentService{
		update: func(d dto.DepartmentDTO) (dto.DepartmentDTO, error) {
			called = true
			return d, nil
		},
	}
	w := doJSON(t, departmentRouter(svc), http.MethodPut, "/department/1",
		dto.DepartmentDTO{ID: 9, Name: "IT"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, called)
}

func TestDepartmentDeleteRestricted(t *testing.T) {
	svc := &stubDepartmentService{
		delete: func(int) error { return repository.ErrForeignKey },
	}
	w := doJSON(t, departmentRouter(svc), http.MethodDelete, "/department/1", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "DEPENDENCY_EXISTS")
}

func TestDepartmentDeleteNotFound(t *testing.T) {
	svc := &stubDepartmentService{
		delete: func(int) error { return repository.ErrNotFound },
	}
	w := doJSON(t, departmentRouter(svc), http.MethodDelete, "/department/99", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}
