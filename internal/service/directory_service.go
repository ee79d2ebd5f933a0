package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/metrics"
	"github.com/sample-hr/employee-admin/internal/model"
	"github.com/sample-hr/employee-admin/internal/repository"
)

// DirectoryService serves the read-only employee views. It is open to
// anonymous sessions.
type DirectoryService struct {
	employees repository.EmployeeStore
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(employees repository.EmployeeStore, m *metrics.Metrics, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{
		employees: employees,
		metrics:   m,
		log:       log.With().Str("component", "directory_service").Logger(),
	}
}

// List returns every employee in ascending hire date order.
func (s *DirectoryService) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.employees.ListOrderedByHireDate(ctx)
	if err != nil {
		return nil, reportFault(s.log, s.metrics, "list employees", err)
	}
	return employees, nil
}

// Detail returns one employee, or repository.ErrNotFound.
func (s *DirectoryService) Detail(ctx context.Context, id int) (model.Employee, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return model.Employee{}, reportFault(s.log, s.metrics, "get employee", err)
	}
	return e, nil
}
