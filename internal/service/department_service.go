package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/empmgmt/employee-backend/internal/dto"
	"github.com/empmgmt/employee-backend/internal/repository"
)

// DepartmentService is the DTO-facing orchestration layer over the
// department repository and mapper.
type DepartmentService interface {
	GetAll(ctx context.Context) ([]dto.DepartmentDTO, error)
	GetByID(ctx context.Context, id int) (dto.DepartmentDTO, error)
	Create(ctx context.Context, d dto.DepartmentDTO) (dto.DepartmentDTO, error)
	Update(ctx context.Context, d dto.DepartmentDTO) (dto.DepartmentDTO, error)
	Delete(ctx context.Context, id int) error
}

type departmentService struct {
	departmentRepo repository.DepartmentRepository
	log            zerolog.Logger
}

func NewDepartmentService(departmentRepo repository.DepartmentRepository, log zerolog.Logger) DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
		log:            log.With().Str("component", "department_service").Logger(),
	}
}

func (s *departmentService) GetAll(ctx context.Context) ([]dto.DepartmentDTO, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, s.wrap(err, "get all departments", 0)
	}

	dtos := make([]dto.DepartmentDTO, 0, len(departments))
	for _, d := range departments {
		dtos = append(dtos, dto.DepartmentToDTO(d))
	}
	return dtos, nil
}

func (s *departmentService) GetByID(ctx context.Context, id int) (dto.DepartmentDTO, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return dto.DepartmentDTO{}, s.wrap(err, "get department", id)
	}
	return dto.DepartmentToDTO(d), nil
}

func (s *departmentService) Create(ctx context.Context, d dto.DepartmentDTO) (dto.DepartmentDTO, error) {
	dep, err := dto.DepartmentFromDTO(d)
	if err != nil {
		return dto.DepartmentDTO{}, err
	}
	dep.ID = 0 // server-generated

	if err := s.departmentRepo.Create(ctx, dep); err != nil {
		return dto.DepartmentDTO{}, s.wrap(err, "create department", 0)
	}
	return dto.DepartmentToDTO(dep), nil
}

func (s *departmentService) Update(ctx context.Context, d dto.DepartmentDTO) (dto.DepartmentDTO, error) {
	current, err := s.departmentRepo.GetByID(ctx, d.ID)
	if err != nil {
		return dto.DepartmentDTO{}, s.wrap(err, "update department", d.ID)
	}

	dep, err := dto.DepartmentFromDTO(d)
	if err != nil {
		return dto.DepartmentDTO{}, err
	}
	dep.UpdatedAt = current.UpdatedAt

	if err := s.departmentRepo.Update(ctx, dep); err != nil {
		return dto.DepartmentDTO{}, s.wrap(err, "update department", d.ID)
	}
	return dto.DepartmentToDTO(dep), nil
}

// Delete rejects the removal of a department that still has employees; the
// repository reports that as a foreign-key condition.
func (s *departmentService) Delete(ctx context.Context, id int) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return s.wrap(err, "delete department", id)
	}
	return nil
}

func (s *departmentService) wrap(err error, op string, id int) error {
	if recoverable(err) {
		s.log.Warn().Err(err).Str("op", op).Int("department_id", id).Msg("Department operation rejected")
		return err
	}
	s.log.Error().Err(err).Str("op", op).Int("department_id", id).Msg("Department operation failed")
	return fmt.Errorf("%s: %w", op, ErrUnavailable)
}
