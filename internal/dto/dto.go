// Package dto defines the flat wire shapes exposed at the API boundary and
// the explicit mapping between them and the domain entities.
package dto

import "time"

// EmployeeDTO is the wire shape for an employee. Department is populated on
// read responses when the association was loaded and ignored on writes.
type EmployeeDTO struct {
	ID           int            `json:"id"`
	Code         string         `json:"code" binding:"required,max=10"`
	Name         string         `json:"name" binding:"required,max=100"`
	Email        string         `json:"email" binding:"required,email"`
	HireDate     time.Time      `json:"hire_date" binding:"required"`
	DepartmentID int            `json:"department_id" binding:"required,min=1"`
	Department   *DepartmentDTO `json:"department,omitempty" binding:"-"`
}

// DepartmentDTO is the wire shape for a department.
type DepartmentDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"omitempty,max=200"`
}
