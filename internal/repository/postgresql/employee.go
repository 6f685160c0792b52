package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/workpay/workpay-backend-go/internal/domain/employee"
	"github.com/workpay/workpay-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, position, department, base_salary, status, created_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Position, &e.Department, &e.BaseSalary, &e.Status, &e.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, database.WrapErr("failed to get employee", err)
	}

	return e, nil
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, position, department, base_salary, status, created_at
		FROM employees
		WHERE status = 'active'
		ORDER BY last_name, first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, database.WrapErr("failed to list active employees", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.FirstName, &e.LastName, &e.Position, &e.Department, &e.BaseSalary, &e.Status, &e.CreatedAt,
		); err != nil {
			return nil, database.WrapErr("failed to scan employee", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}
