package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/empmgmt/employee-backend/internal/dto"
	"github.com/empmgmt/employee-backend/internal/model"
	"github.com/empmgmt/employee-backend/internal/repository"
)

func TestDepartmentServiceCreateThenGet(t *testing.T) {
	repo := newFakeDepartmentRepo()
	svc := NewDepartmentService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.DepartmentDTO{Name: "HR", Description: "Human Resources"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestDepartmentServiceCreateInvalid(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), dto.DepartmentDTO{Name: "   "})
	require.ErrorIs(t, err, model.ErrInvalidValue)
}

func TestDepartmentServiceDeleteRestricted(t *testing.T) {
	repo := newFakeDepartmentRepo()
	svc := NewDepartmentService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.DepartmentDTO{Name: "IT"})
	require.NoError(t, err)

	repo.referenced[created.ID] = true
	require.ErrorIs(t, svc.Delete(ctx, created.ID), repository.ErrForeignKey)

	// Still there.
	_, err = svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
}

func TestDepartmentServiceDeleteMissing(t *testing.T) {
	svc := NewDepartmentService(newFakeDepartmentRepo(), zerolog.Nop())
	require.ErrorIs(t, svc.Delete(context.Background(), 404), repository.ErrNotFound)
}

func TestDepartmentServiceWrapsStoreFailures(t *testing.T) {
	repo := newFakeDepartmentRepo()
	repo.failWith = errors.New("connection reset")
	svc := NewDepartmentService(repo, zerolog.Nop())

	err := svc.Delete(context.Background(), 1)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestDepartmentServiceUpdate(t *testing.T) {
	repo := newFakeDepartmentRepo()
	svc := NewDepartmentService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.DepartmentDTO{Name: "Finance"})
	require.NoError(t, err)

	created.Description = "Financial Department"
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)
	require.Equal(t, "Financial Department", updated.Description)
}
