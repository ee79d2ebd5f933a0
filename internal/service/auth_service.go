package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/metrics"
	"github.com/sample-hr/employee-admin/internal/repository"
	"github.com/sample-hr/employee-admin/internal/session"
	"github.com/sample-hr/employee-admin/internal/validator"
)

// AuthService moves a session between the anonymous and authenticated
// states.
type AuthService struct {
	admins  repository.AdministratorStore
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(admins repository.AdministratorStore, m *metrics.Metrics, log zerolog.Logger) *AuthService {
	return &AuthService{
		admins:  admins,
		metrics: m,
		log:     log.With().Str("component", "auth_service").Logger(),
	}
}

// Login checks a submitted credential pair and returns the state the session
// moves to. On any failure the state is Anonymous; a credential mismatch is
// reported as a violation on the mail address field wrapping
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, raw map[string]string) (session.AuthState, error) {
	form, err := validator.ParseLogin(raw)
	if err != nil {
		s.metrics.LoginAttempt(metrics.OutcomeInvalidForm)
		return session.Anonymous(), err
	}

	admin, err := s.admins.FindByCredentials(ctx, form.MailAddress, form.Password)
	if errors.Is(err, repository.ErrNotFound) {
		s.metrics.LoginAttempt(metrics.OutcomeInvalidCredentials)
		s.log.Info().Str("mail_address", form.MailAddress).Msg("login rejected")
		return session.Anonymous(), validator.FieldError(validator.FieldMailAddress, invalidCredentialsMessage, ErrInvalidCredentials)
	}
	if err != nil {
		s.metrics.LoginAttempt(metrics.OutcomeError)
		return session.Anonymous(), reportFault(s.log, s.metrics, "find administrator", err)
	}

	s.metrics.LoginAttempt(metrics.OutcomeSuccess)
	s.log.Info().Int("administrator_id", admin.ID).Msg("administrator logged in")
	return session.Authenticated(admin.Name), nil
}

// Logout returns the state after logging out of st, which is always
// Anonymous.
func (s *AuthService) Logout(st session.AuthState) session.AuthState {
	if name, ok := st.AdministratorName(); ok {
		s.log.Info().Str("administrator", name).Msg("administrator logged out")
	}
	return session.Anonymous()
}
