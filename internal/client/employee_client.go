package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/empmgmt/employee-backend/internal/dto"
	"github.com/empmgmt/employee-backend/internal/service"
)

// EmployeeClient exposes the employee CRUD operations as typed calls
// against the API.
type EmployeeClient struct {
	api *apiClient
}

func NewEmployeeClient(baseURL string, tokens *service.TokenService, log zerolog.Logger) *EmployeeClient {
	return &EmployeeClient{api: newAPIClient(baseURL, tokens, log, "employee_client")}
}

func (c *EmployeeClient) GetAll(ctx context.Context) ([]dto.EmployeeDTO, error) {
	var data struct {
		Employees []dto.EmployeeDTO `json:"employees"`
	}
	if err := c.api.do(ctx, http.MethodGet, "/employee", nil, &data); err != nil {
		return nil, err
	}
	return data.Employees, nil
}

func (c *EmployeeClient) GetByID(ctx context.Context, id int) (dto.EmployeeDTO, error) {
	var data struct {
		Employee dto.EmployeeDTO `json:"employee"`
	}
	if err := c.api.do(ctx, http.MethodGet, fmt.Sprintf("/employee/%d", id), nil, &data); err != nil {
		return dto.EmployeeDTO{}, err
	}
	return data.Employee, nil
}

func (c *EmployeeClient) Create(ctx context.Context, d dto.EmployeeDTO) (dto.EmployeeDTO, error) {
	var data struct {
		Employee dto.EmployeeDTO `json:"employee"`
	}
	if err := c.api.do(ctx, http.MethodPost, "/employee", d, &data); err != nil {
		return dto.EmployeeDTO{}, err
	}
	return data.Employee, nil
}

func (c *EmployeeClient) Update(ctx context.Context, d dto.EmployeeDTO) (dto.EmployeeDTO, error) {
	var data struct {
		Employee dto.EmployeeDTO `json:"employee"`
	}
	if err := c.api.do(ctx, http.MethodPut, fmt.Sprintf("/employee/%d", d.ID), d, &data); err != nil {
		return dto.EmployeeDTO{}, err
	}
	return data.Employee, nil
}

func (c *EmployeeClient) Delete(ctx context.Context, id int) error {
	return c.api.do(ctx, http.MethodDelete, fmt.Sprintf("/employee/%d", id), nil, nil)
}
