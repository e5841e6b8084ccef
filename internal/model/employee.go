package model

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const maxEmployeeNameLen = 100

// Employee is the persistence-identified employee aggregate. Code and Email
// are validated once at construction and trusted afterwards.
type Employee struct {
	ID           int
	Code         EmployeeCode
	Name         string
	Email        EmailAddress
	HireDate     time.Time
	DepartmentID int
	// Department is populated on reads via the eager join. Writes address
	// the association by DepartmentID only.
	Department *Department
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewEmployee validates the scalar fields and wraps code and email into
// their value objects.
func NewEmployee(code, name, email string, hireDate time.Time, departmentID int) (*Employee, error) {
	empCode, err := NewEmployeeCode(code)
	if err != nil {
		return nil, err
	}
	empEmail, err := NewEmailAddress(email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: employee name cannot be empty", ErrInvalidValue)
	}
	if utf8.RuneCountInString(name) > maxEmployeeNameLen {
		return nil, fmt.Errorf("%w: employee name cannot exceed %d characters", ErrInvalidValue, maxEmployeeNameLen)
	}
	if hireDate.IsZero() {
		return nil, fmt.Errorf("%w: hire date is required", ErrInvalidValue)
	}
	if departmentID <= 0 {
		return nil, fmt.Errorf("%w: department id must be positive", ErrInvalidValue)
	}
	return &Employee{
		Code:         empCode,
		Name:         name,
		Email:        empEmail,
		HireDate:     hireDate,
		DepartmentID: departmentID,
	}, nil
}
