package dto

import "github.com/empmgmt/employee-backend/internal/model"

// EmployeeToDTO flattens an employee entity into its wire shape, unwrapping
// the value objects. A loaded Department association becomes a nested DTO.
func EmployeeToDTO(e *model.Employee) EmployeeDTO {
	d := EmployeeDTO{
		ID:           e.ID,
		Code:         e.Code.Value(),
		Name:         e.Name,
		Email:        e.Email.Value(),
		HireDate:     e.HireDate,
		DepartmentID: e.DepartmentID,
	}
	if e.Department != nil {
		dept := DepartmentToDTO(e.Department)
		d.Department = &dept
	}
	return d
}

// EmployeeFromDTO rebuilds an employee entity from its wire shape,
// re-running value-object validation. A malformed field fails here rather
// than propagating into persistence. The nested Department is deliberately
// not reconstructed; writes address the association by DepartmentID only.
func EmployeeFromDTO(d EmployeeDTO) (*model.Employee, error) {
	e, err := model.NewEmployee(d.Code, d.Name, d.Email, d.HireDate, d.DepartmentID)
	if err != nil {
		return nil, err
	}
	e.ID = d.ID
	return e, nil
}

// DepartmentToDTO flattens a department entity into its wire shape.
func DepartmentToDTO(dep *model.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:          dep.ID,
		Name:        dep.Name.Value(),
		Description: dep.Description,
	}
}

// DepartmentFromDTO rebuilds a department entity from its wire shape,
// re-running value-object validation.
func DepartmentFromDTO(d DepartmentDTO) (*model.Department, error) {
	dep, err := model.NewDepartment(d.Name, d.Description)
	if err != nil {
		return nil, err
	}
	dep.ID = d.ID
	return dep, nil
}
