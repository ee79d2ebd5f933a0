package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sample-hr/employee-admin/internal/model"
)

// EmployeeRepository handles employee data access.
type EmployeeRepository struct {
	db *sqlx.DB
}

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Insert stores a new employee and returns its assigned identifier.
func (r *EmployeeRepository) Insert(ctx context.Context, e model.Employee) (int, error) {
	stmt, err := r.db.PrepareNamedContext(ctx, employeesTable.insertSQL())
	if err != nil {
		return 0, wrap("insert employee", err)
	}
	defer stmt.Close()

	var id int
	if err := stmt.GetContext(ctx, &id, e); err != nil {
		return 0, wrap("insert employee", err)
	}
	return id, nil
}

// ListOrderedByHireDate returns every employee, earliest hire first. Ties on
// the hire date are broken by id.
func (r *EmployeeRepository) ListOrderedByHireDate(ctx context.Context) ([]model.Employee, error) {
	employees := []model.Employee{}
	if err := r.db.SelectContext(ctx, &employees,
		employeesTable.selectSQL()+" ORDER BY hire_date, id"); err != nil {
		return nil, wrap("list employees", err)
	}
	return employees, nil
}

// GetByID returns the employee with the given id or ErrNotFound.
func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (model.Employee, error) {
	var e model.Employee
	query := r.db.Rebind(employeesTable.selectSQL() + " WHERE id = ?")
	if err := r.db.GetContext(ctx, &e, query, id); err != nil {
		return model.Employee{}, wrap("get employee", err)
	}
	return e, nil
}

// Update overwrites every column of the employee identified by e.ID.
// Returns ErrNotFound when no such employee exists.
func (r *EmployeeRepository) Update(ctx context.Context, e model.Employee) error {
	res, err := r.db.NamedExecContext(ctx, employeesTable.updateSQL(), e)
	if err != nil {
		return wrap("update employee", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return wrap("update employee", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
