// Package memory provides the built-in sample dataset used when no
// database is configured. The rows mirror what a staffing database would
// hold and are anchored to the current date so the demo calendar always
// has something to show.
package memory

import (
	"context"

	"staffcalendar/internal/domain"
)

type EmployeeRepository struct{}

func NewEmployeeRepository() domain.EmployeeRepository {
	return &EmployeeRepository{}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	return []*domain.Employee{
		domain.NewEmployee(1, "Max Mustermann", "Vertrieb", "#4a90e2"),
		domain.NewEmployee(2, "Anna Schmidt", "Marketing", "#e74c3c"),
		domain.NewEmployee(3, "Peter Weber", "IT", "#2ecc71"),
		domain.NewEmployee(4, "Julia Müller", "HR", "#f39c12"),
	}, nil
}
