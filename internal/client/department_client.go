package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/empmgmt/employee-backend/internal/dto"
	"github.com/empmgmt/employee-backend/internal/service"
)

// DepartmentClient exposes the department CRUD operations as typed calls
// against the API.
type DepartmentClient struct {
	api *apiClient
}

func NewDepartmentClient(baseURL string, tokens *service.TokenService, log zerolog.Logger) *DepartmentClient {
	return &DepartmentClient{api: newAPIClient(baseURL, tokens, log, "department_client")}
}

func (c *DepartmentClient) GetAll(ctx context.Context) ([]dto.DepartmentDTO, error) {
	var data struct {
		Departments []dto.DepartmentDTO `json:"departments"`
	}
	if err := c.api.do(ctx, http.MethodGet, "/department", nil, &data); err != nil {
		return nil, err
	}
	return data.Departments, nil
}

func (c *DepartmentClient) GetByID(ctx context.Context, id int) (dto.DepartmentDTO, error) {
	var data struct {
		Department dto.DepartmentDTO `json:"department"`
	}
	if err := c.api.do(ctx, http.MethodGet, fmt.Sprintf("/department/%d", id), nil, &data); err != nil {
		return dto.DepartmentDTO{}, err
	}
	return data.Department, nil
}

func (c *DepartmentClient) Create(ctx context.Context, d dto.DepartmentDTO) (dto.DepartmentDTO, error) {
	var data struct {
		Department dto.DepartmentDTO `json:"department"`
	}
	if err := c.api.do(ctx, http.MethodPost, "/department", d, &data); err != nil {
		return dto.DepartmentDTO{}, err
	}
	return data.Department, nil
}

func (c *DepartmentClient) Update(ctx context.Context, d dto.DepartmentDTO) (dto.DepartmentDTO, error) {
	var data struct {
		Department dto.DepartmentDTO `json:"department"`
	}
	if err := c.api.do(ctx, http.MethodPut, fmt.Sprintf("/department/%d", d.ID), d, &data); err != nil {
		return dto.DepartmentDTO{}, err
	}
	return data.Department, nil
}

func (c *DepartmentClient) Delete(ctx context.Context, id int) error {
	return c.api.do(ctx, http.MethodDelete, fmt.Sprintf("/department/%d", id), nil, nil)
}
