package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	hireDate := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	e, err := NewEmployee("E001", "Alice Johnson", "alice@example.com", hireDate, 1)
	require.NoError(t, err)
	require.Equal(t, "E001", e.Code.Value())
	require.Equal(t, "Alice Johnson", e.Name)
	require.Equal(t, "alice@example.com", e.Email.Value())
	require.Equal(t, hireDate, e.HireDate)
	require.Equal(t, 1, e.DepartmentID)
	require.Nil(t, e.Department)

	// Bounds count characters, not bytes.
	_, err = NewEmployee("E001", strings.Repeat("é", 100), "alice@example.com", hireDate, 1)
	require.NoError(t, err)

	cases := []struct {
		name         string
		code         string
		empName      string
		email        string
		hireDate     time.Time
		departmentID int
	}{
		{"bad code", "", "Alice", "alice@example.com", hireDate, 1},
		{"bad email", "E001", "Alice", "nope", hireDate, 1},
		{"empty name", "E001", "  ", "alice@example.com", hireDate, 1},
		{"name over bound", "E001", strings.Repeat("n", 101), "alice@example.com", hireDate, 1},
		{"multibyte name over bound", "E001", strings.Repeat("é", 101), "alice@example.com", hireDate, 1},
		{"zero hire date", "E001", "Alice", "alice@example.com", time.Time{}, 1},
		{"bad department id", "E001", "Alice", "alice@example.com", hireDate, 0},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEmployee(tt.code, tt.empName, tt.email, tt.hireDate, tt.departmentID)
			require.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestNewDepartment(t *testing.T) {
	d, err := NewDepartment("HR", "Human Resources")
	require.NoError(t, err)
	require.Equal(t, "HR", d.Name.Value())
	require.Equal(t, "Human Resources", d.Description)

	_, err = NewDepartment("HR", strings.Repeat("d", 201))
	require.ErrorIs(t, err, ErrInvalidValue)

	_, err = NewDepartment("HR", strings.Repeat("é", 200))
	require.NoError(t, err)

	// Description is optional.
	d, err = NewDepartment("IT", "")
	require.NoError(t, err)
	require.Empty(t, d.Description)
}
