package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/metrics"
	"github.com/sample-hr/employee-admin/internal/model"
	"github.com/sample-hr/employee-admin/internal/repository"
	"github.com/sample-hr/employee-admin/internal/session"
	"github.com/sample-hr/employee-admin/internal/validator"
)

// EmployeeService edits employee records on behalf of a logged-in
// administrator.
type EmployeeService struct {
	employees repository.EmployeeStore
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employees repository.EmployeeStore, m *metrics.Metrics, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		metrics:   m,
		log:       log.With().Str("component", "employee_service").Logger(),
	}
}

// EditForm returns the current values of an employee as edit form strings.
func (s *EmployeeService) EditForm(ctx context.Context, id int) (map[string]string, error) {
	if !session.FromContext(ctx).IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, reportFault(s.log, s.metrics, "get employee", err)
	}
	return validator.EmployeeForm(e), nil
}

// Update applies an edit submission to employee id and returns the stored
// result. The record is loaded first, the submitted fields are validated and
// merged onto it, and only then is it written back. Fields absent from raw
// keep their stored values; the identifier always comes from the load. A
// submission with no known fields writes nothing.
//
// Concurrent updates of the same employee are last writer wins.
func (s *EmployeeService) Update(ctx context.Context, id int, raw map[string]string) (model.Employee, error) {
	if !session.FromContext(ctx).IsAuthenticated() {
		s.metrics.EmployeeUpdate(metrics.OutcomeNotAuthenticated)
		return model.Employee{}, ErrNotAuthenticated
	}

	current, err := s.employees.GetByID(ctx, id)
	if err != nil {
		s.countFailure(err)
		return model.Employee{}, reportFault(s.log, s.metrics, "get employee", err)
	}

	edit, err := validator.ParseEmployeeEdit(raw)
	if err != nil {
		s.metrics.EmployeeUpdate(metrics.OutcomeInvalidForm)
		return model.Employee{}, err
	}
	if edit.Empty() {
		s.metrics.EmployeeUpdate(metrics.OutcomeSuccess)
		return current, nil
	}

	updated := edit.Apply(current)
	if err := s.employees.Update(ctx, updated); err != nil {
		s.countFailure(err)
		return model.Employee{}, reportFault(s.log, s.metrics, "update employee", err)
	}

	s.metrics.EmployeeUpdate(metrics.OutcomeSuccess)
	s.log.Info().Int("employee_id", id).Msg("employee updated")
	return updated, nil
}

func (s *EmployeeService) countFailure(err error) {
	if errors.Is(err, repository.ErrNotFound) {
		s.metrics.EmployeeUpdate(metrics.OutcomeNotFound)
		return
	}
	s.metrics.EmployeeUpdate(metrics.OutcomeError)
}
