package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/empmgmt/employee-backend/internal/model"
)

// DepartmentRepository is the persistence contract for departments.
type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]*model.Department, error)
	GetByID(ctx context.Context, id int) (*model.Department, error)
	Create(ctx context.Context, d *model.Department) error
	Update(ctx context.Context, d *model.Department) error
	Delete(ctx context.Context, id int) error
}

type departmentRepository struct {
	db *pgxpool.Pool
}

func NewDepartmentRepository(db *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) GetAll(ctx context.Context) ([]*model.Department, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM departments ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query departments: %w", err)
	}
	defer rows.Close()

	var departments []*model.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *departmentRepository) GetByID(ctx context.Context, id int) (*model.Department, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM departments WHERE id = $1`, id)
	d, err := scanDepartment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *departmentRepository) Create(ctx context.Context, d *model.Department) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO departments (name, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		d.Name.Value(), d.Description,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return mapConstraintErr(err)
	}
	return nil
}

// Update uses the entity's UpdatedAt as the optimistic concurrency token,
// same contract as the employee repository.
func (r *departmentRepository) Update(ctx context.Context, d *model.Department) error {
	err := r.db.QueryRow(ctx,
		`UPDATE departments
		 SET name = $1, description = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3 AND updated_at = $4
		 RETURNING updated_at`,
		d.Name.Value(), d.Description, d.ID, d.UpdatedAt,
	).Scan(&d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.classifyMissedUpdate(ctx, d.ID)
		}
		return mapConstraintErr(err)
	}
	return nil
}

// Delete removes a department. Employees still referencing it make the
// delete fail with ErrForeignKey through the ON DELETE RESTRICT constraint.
func (r *departmentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return mapConstraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *departmentRepository) classifyMissedUpdate(ctx context.Context, id int) error {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM departments WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check department %d: %w", id, err)
	}
	if exists {
		return ErrWriteConflict
	}
	return ErrNotFound
}

func scanDepartment(row pgx.Row) (*model.Department, error) {
	var (
		id                   int
		name, description    string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	dn, err := model.NewDepartmentName(name)
	if err != nil {
		return nil, fmt.Errorf("stored department %d: %w", id, err)
	}
	return &model.Department{
		ID:          id,
		Name:        dn,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
