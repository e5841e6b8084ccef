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

// EmployeeRepository is the persistence contract for employees. Reads
// eagerly load the owning department.
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]*model.Employee, error)
	GetByID(ctx context.Context, id int) (*model.Employee, error)
	Create(ctx context.Context, e *model.Employee) error
	Update(ctx context.Context, e *model.Employee) error
	Delete(ctx context.Context, id int) error
}

type employeeRepository struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeSelect = `
	SELECT e.id, e.code, e.name, e.email, e.hire_date, e.department_id,
	       e.created_at, e.updated_at,
	       d.id, d.name, d.description, d.created_at, d.updated_at
	FROM employees e
	JOIN departments d ON d.id = e.department_id`

func (r *employeeRepository) GetAll(ctx context.Context) ([]*model.Employee, error) {
	rows, err := r.db.Query(ctx, employeeSelect+` ORDER BY e.code ASC`)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) GetByID(ctx context.Context, id int) (*model.Employee, error) {
	row := r.db.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id)
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, e *model.Employee) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO employees (code, name, email, hire_date, department_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		e.Code.Value(), e.Name, e.Email.Value(), e.HireDate, e.DepartmentID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return mapConstraintErr(err)
	}
	return nil
}

// Update persists changes to an existing employee. The UpdatedAt carried on
// the entity is the optimistic concurrency token: a row that changed since
// it was read matches zero rows and surfaces as ErrWriteConflict.
func (r *employeeRepository) Update(ctx context.Context, e *model.Employee) error {
	err := r.db.QueryRow(ctx,
		`UPDATE employees
		 SET code = $1, name = $2, email = $3, hire_date = $4, department_id = $5,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6 AND updated_at = $7
		 RETURNING updated_at`,
		e.Code.Value(), e.Name, e.Email.Value(), e.HireDate, e.DepartmentID,
		e.ID, e.UpdatedAt,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.classifyMissedUpdate(ctx, e.ID)
		}
		return mapConstraintErr(err)
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return mapConstraintErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// classifyMissedUpdate distinguishes a vanished row from a concurrently
// modified one after an optimistic update matched nothing.
func (r *employeeRepository) classifyMissedUpdate(ctx context.Context, id int) error {
	var exists bool
	if err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check employee %d: %w", id, err)
	}
	if exists {
		return ErrWriteConflict
	}
	return ErrNotFound
}

// scanEmployee builds an employee entity, department included, from a joined
// row. Stored values re-enter the domain through the validating factories.
func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var (
		id, departmentID               int
		code, name, email              string
		hireDate, createdAt, updatedAt time.Time
		deptID                         int
		deptName, deptDesc             string
		deptCreatedAt, deptUpdatedAt   time.Time
	)
	if err := row.Scan(&id, &code, &name, &email, &hireDate, &departmentID,
		&createdAt, &updatedAt,
		&deptID, &deptName, &deptDesc, &deptCreatedAt, &deptUpdatedAt); err != nil {
		return nil, err
	}

	e, err := model.NewEmployee(code, name, email, hireDate, departmentID)
	if err != nil {
		return nil, fmt.Errorf("stored employee %d: %w", id, err)
	}
	e.ID = id
	e.CreatedAt = createdAt
	e.UpdatedAt = updatedAt

	dn, err := model.NewDepartmentName(deptName)
	if err != nil {
		return nil, fmt.Errorf("stored department %d: %w", deptID, err)
	}
	e.Department = &model.Department{
		ID:          deptID,
		Name:        dn,
		Description: deptDesc,
		CreatedAt:   deptCreatedAt,
		UpdatedAt:   deptUpdatedAt,
	}
	return e, nil
}
