package model

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// ErrInvalidValue is the sentinel wrapped by every value-object validation
// failure. Handlers map it to HTTP 400 with errors.Is.
var ErrInvalidValue = errors.New("invalid value")

const (
	maxEmployeeCodeLen   = 10
	maxDepartmentNameLen = 50
)

// EmployeeCode is a validated employee code, at most 10 characters.
// The zero value is invalid; construct via NewEmployeeCode.
type EmployeeCode struct {
	value string
}

// NewEmployeeCode validates and wraps a raw employee code.
func NewEmployeeCode(raw string) (EmployeeCode, error) {
	if strings.TrimSpace(raw) == "" {
		return EmployeeCode{}, fmt.Errorf("%w: employee code cannot be empty", ErrInvalidValue)
	}
	if utf8.RuneCountInString(raw) > maxEmployeeCodeLen {
		return EmployeeCode{}, fmt.Errorf("%w: employee code cannot exceed %d characters", ErrInvalidValue, maxEmployeeCodeLen)
	}
	return EmployeeCode{value: raw}, nil
}

// Value returns the wrapped string.
func (c EmployeeCode) Value() string { return c.value }

func (c EmployeeCode) String() string { return c.value }

// EmailAddress is a syntactically valid email address.
// The zero value is invalid; construct via NewEmailAddress.
type EmailAddress struct {
	value string
}

// NewEmailAddress validates and wraps a raw email address.
func NewEmailAddress(raw string) (EmailAddress, error) {
	if strings.TrimSpace(raw) == "" {
		return EmailAddress{}, fmt.Errorf("%w: email cannot be empty", ErrInvalidValue)
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return EmailAddress{}, fmt.Errorf("%w: invalid email format", ErrInvalidValue)
	}
	return EmailAddress{value: raw}, nil
}

// Value returns the wrapped string.
func (e EmailAddress) Value() string { return e.value }

func (e EmailAddress) String() string { return e.value }

// DepartmentName is a validated department name, at most 50 characters.
// The zero value is invalid; construct via NewDepartmentName.
type DepartmentName struct {
	value string
}

// NewDepartmentName validates and wraps a raw department name.
func NewDepartmentName(raw string) (DepartmentName, error) {
	if strings.TrimSpace(raw) == "" {
		return DepartmentName{}, fmt.Errorf("%w: department name cannot be empty", ErrInvalidValue)
	}
	if utf8.RuneCountInString(raw) > maxDepartmentNameLen {
		return DepartmentName{}, fmt.Errorf("%w: department name cannot exceed %d characters", ErrInvalidValue, maxDepartmentNameLen)
	}
	return DepartmentName{value: raw}, nil
}

// Value returns the wrapped string.
func (n DepartmentName) Value() string { return n.value }

func (n DepartmentName) String() string { return n.value }
