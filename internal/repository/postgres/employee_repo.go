// Package postgres implements the data-source repositories against a
// PostgreSQL staffing database, for deployments that configure
// DATABASE_URL instead of the built-in sample dataset.
package postgres

import (
	"context"
	"database/sql"

	"staffcalendar/internal/domain"
)

type EmployeeRepository struct {
	DB *sql.DB
}

func NewEmployeeRepository(db *sql.DB) domain.EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]*domain.Employee, error) {
	query := `
		SELECT id, name, department, color
		FROM employers
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var employees []*domain.Employee
	for rows.Next() {
		emp := &domain.Employee{}
		var department, color sql.NullString
		if err := rows.Scan(&emp.ID, &emp.Name, &department, &color); err != nil {
			return nil, err
		}
		emp.Department = department.String
		emp.Color = color.String
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}
