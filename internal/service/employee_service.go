package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/empmgmt/employee-backend/internal/dto"
	"github.com/empmgmt/employee-backend/internal/repository"
)

// EmployeeService is the DTO-facing orchestration layer over the employee
// repository and mapper.
type EmployeeService interface {
	GetAll(ctx context.Context) ([]dto.EmployeeDTO, error)
	GetByID(ctx context.Context, id int) (dto.EmployeeDTO, error)
	Create(ctx context.Context, d dto.EmployeeDTO) (dto.EmployeeDTO, error)
	Update(ctx context.Context, d dto.EmployeeDTO) (dto.EmployeeDTO, error)
	Delete(ctx context.Context, id int) error
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	log          zerolog.Logger
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository, log zerolog.Logger) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		log:          log.With().Str("component", "employee_service").Logger(),
	}
}

func (s *employeeService) GetAll(ctx context.Context) ([]dto.EmployeeDTO, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, s.wrap(err, "get all employees", 0)
	}

	dtos := make([]dto.EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		dtos = append(dtos, dto.EmployeeToDTO(e))
	}
	return dtos, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int) (dto.EmployeeDTO, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return dto.EmployeeDTO{}, s.wrap(err, "get employee", id)
	}
	return dto.EmployeeToDTO(e), nil
}

func (s *employeeService) Create(ctx context.Context, d dto.EmployeeDTO) (dto.EmployeeDTO, error) {
	e, err := dto.EmployeeFromDTO(d)
	if err != nil {
		return dto.EmployeeDTO{}, err
	}
	e.ID = 0 // server-generated

	if err := s.employeeRepo.Create(ctx, e); err != nil {
		return dto.EmployeeDTO{}, s.wrap(err, "create employee", 0)
	}
	return dto.EmployeeToDTO(e), nil
}

// Update re-reads the row first: the stored UpdatedAt is the optimistic
// concurrency token the repository needs to detect a write conflict.
func (s *employeeService) Update(ctx context.Context, d dto.EmployeeDTO) (dto.EmployeeDTO, error) {
	current, err := s.employeeRepo.GetByID(ctx, d.ID)
	if err != nil {
		return dto.EmployeeDTO{}, s.wrap(err, "update employee", d.ID)
	}

	e, err := dto.EmployeeFromDTO(d)
	if err != nil {
		return dto.EmployeeDTO{}, err
	}
	e.UpdatedAt = current.UpdatedAt

	if err := s.employeeRepo.Update(ctx, e); err != nil {
		return dto.EmployeeDTO{}, s.wrap(err, "update employee", d.ID)
	}
	return dto.EmployeeToDTO(e), nil
}

func (s *employeeService) Delete(ctx context.Context, id int) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return s.wrap(err, "delete employee", id)
	}
	return nil
}

// wrap logs the failure with the operation and identifying parameters,
// passes typed recoverable conditions through and hides everything else
// behind ErrUnavailable.
func (s *employeeService) wrap(err error, op string, id int) error {
	if recoverable(err) {
		s.log.Warn().Err(err).Str("op", op).Int("employee_id", id).Msg("Employee operation rejected")
		return err
	}
	s.log.Error().Err(err).Str("op", op).Int("employee_id", id).Msg("Employee operation failed")
	return fmt.Errorf("%s: %w", op, ErrUnavailable)
}
