package repository

import (
	"context"

	"github.com/sample-hr/employee-admin/internal/model"
)

// AdministratorStore persists administrators.
type AdministratorStore interface {
	Insert(ctx context.Context, admin model.Administrator) (int, error)
	FindByCredentials(ctx context.Context, mailAddress, password string) (model.Administrator, error)
}

// EmployeeStore persists employees.
type EmployeeStore interface {
	Insert(ctx context.Context, e model.Employee) (int, error)
	ListOrderedByHireDate(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, id int) (model.Employee, error)
	Update(ctx context.Context, e model.Employee) error
}
