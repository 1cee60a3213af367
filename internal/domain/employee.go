package domain

import (
	"context"
	"errors"
)

// Sentinel errors for data-source operations.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyResult is returned when a fetch yields zero records where at
	// least one was expected (e.g. no employees at all).
	ErrEmptyResult = errors.New("empty result")
)

// Employee represents one staff member, i.e. one column of the day view.
// swagger:model Employee
type Employee struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Color      string `json:"color,omitempty"`
}

// NewEmployee returns a new Employee with the given fields.
func NewEmployee(id int, name, department, color string) *Employee {
	return &Employee{
		ID:         id,
		Name:       name,
		Department: department,
		Color:      color,
	}
}

// EmployeeRepository defines the interface for employee storage
type EmployeeRepository interface {
	List(ctx context.Context) ([]*Employee, error)
}
