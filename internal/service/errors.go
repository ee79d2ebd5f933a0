package service

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/metrics"
	"github.com/sample-hr/employee-admin/internal/repository"
)

// Common service errors.
var (
	ErrNotAuthenticated   = errors.New("administrator login required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// invalidCredentialsMessage is shown on the mail address field after a
// failed login.
const invalidCredentialsMessage = "mail address or password is invalid"

// reportFault logs and counts err when it is a store failure. The error is
// returned unchanged; nothing is retried.
func reportFault(log zerolog.Logger, m *metrics.Metrics, op string, err error) error {
	var fault *repository.StoreFault
	if errors.As(err, &fault) {
		m.StoreFault(op)
		log.Error().Err(err).Str("op", op).Str("sqlstate", fault.Code).Msg("store fault")
	}
	return err
}
