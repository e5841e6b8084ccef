package service

import (
	"context"
	"time"

	"github.com/empmgmt/employee-backend/internal/model"
	"github.com/empmgmt/employee-backend/internal/repository"
)

// fakeEmployeeRepo is an in-memory EmployeeRepository honoring the same
// typed-condition contract as the pgx implementation.
type fakeEmployeeRepo struct {
	employees map[int]*model.Employee
	nextID    int
	failWith  error // returned from every call when set
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[int]*model.Employee{}, nextID: 1}
}

func (f *fakeEmployeeRepo) GetAll(_ context.Context) ([]*model.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*model.Employee
	for _, e := range f.employees {
		copied := *e
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int) (*model.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	e, ok := f.employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.employees {
		if existing.Code == e.Code {
			return repository.ErrDuplicate
		}
	}
	e.ID = f.nextID
	f.nextID++
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	copied := *e
	f.employees[e.ID] = &copied
	return nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	if f.failWith != nil {
		return f.failWith
	}
	stored, ok := f.employees[e.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if !stored.UpdatedAt.Equal(e.UpdatedAt) {
		return repository.ErrWriteConflict
	}
	e.UpdatedAt = time.Now()
	copied := *e
	f.employees[e.ID] = &copied
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.employees[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.employees, id)
	return nil
}

// fakeDepartmentRepo mirrors the department contract, including the
// restricted delete.
type fakeDepartmentRepo struct {
	departments map[int]*model.Department
	nextID      int
	referenced  map[int]bool // department ids with employees attached
	failWith    error
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{
		departments: map[int]*model.Department{},
		nextID:      1,
		referenced:  map[int]bool{},
	}
}

func (f *fakeDepartmentRepo) GetAll(_ context.Context) ([]*model.Department, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*model.Department
	for _, d := range f.departments {
		copied := *d
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id int) (*model.Department, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	d, ok := f.departments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *d
	return &copied, nil
}

func (f *fakeDepartmentRepo) Create(_ context.Context, d *model.Department) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.departments {
		if existing.Name == d.Name {
			return repository.ErrDuplicate
		}
	}
	d.ID = f.nextID
	f.nextID++
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	copied := *d
	f.departments[d.ID] = &copied
	return nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, d *model.Department) error {
	if f.failWith != nil {
		return f.failWith
	}
	stored, ok := f.departments[d.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if !stored.UpdatedAt.Equal(d.UpdatedAt) {
		return repository.ErrWriteConflict
	}
	d.UpdatedAt = time.Now()
	copied := *d
	f.departments[d.ID] = &copied
	return nil
}

func (f *fakeDepartmentRepo) Delete(_ context.Context, id int) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.departments[id]; !ok {
		return repository.ErrNotFound
	}
	if f.referenced[id] {
		return repository.ErrForeignKey
	}
	delete(f.departments, id)
	return nil
}
