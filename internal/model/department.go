package model

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const maxDescriptionLen = 200

// Department is the persistence-identified department aggregate. It does not
// own its employees; the collection is an association populated on demand.
type Department struct {
	ID          int
	Name        DepartmentName
	Description string
	Employees   []Employee
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDepartment validates the name and optional description.
func NewDepartment(name, description string) (*Department, error) {
	deptName, err := NewDepartmentName(name)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description cannot exceed %d characters", ErrInvalidValue, maxDescriptionLen)
	}
	return &Department{
		Name:        deptName,
		Description: description,
	}, nil
}
