package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/metrics"
	"github.com/sample-hr/employee-admin/internal/model"
	"github.com/sample-hr/employee-admin/internal/repository"
	"github.com/sample-hr/employee-admin/internal/session"
	"github.com/sample-hr/employee-admin/internal/validator"
)

// AdministratorService registers new administrators.
type AdministratorService struct {
	admins  repository.AdministratorStore
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewAdministratorService creates a new AdministratorService.
func NewAdministratorService(admins repository.AdministratorStore, m *metrics.Metrics, log zerolog.Logger) *AdministratorService {
	return &AdministratorService{
		admins:  admins,
		metrics: m,
		log:     log.With().Str("component", "administrator_service").Logger(),
	}
}

// Register validates a registration submission and stores the new
// administrator. The caller's session must be authenticated. The new
// administrator is not logged in.
func (s *AdministratorService) Register(ctx context.Context, raw map[string]string) (model.Administrator, error) {
	if !session.FromContext(ctx).IsAuthenticated() {
		s.metrics.Registration(metrics.OutcomeNotAuthenticated)
		return model.Administrator{}, ErrNotAuthenticated
	}

	admin, err := validator.ParseRegistration(raw)
	if err != nil {
		s.metrics.Registration(metrics.OutcomeInvalidForm)
		return model.Administrator{}, err
	}

	id, err := s.admins.Insert(ctx, admin)
	if err != nil {
		s.metrics.Registration(metrics.OutcomeError)
		return model.Administrator{}, reportFault(s.log, s.metrics, "insert administrator", err)
	}
	admin.ID = id

	s.metrics.Registration(metrics.OutcomeSuccess)
	s.log.Info().Int("administrator_id", id).Msg("administrator registered")
	return admin, nil
}
