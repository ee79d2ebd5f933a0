package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/response"
	"github.com/sample-hr/employee-admin/internal/session"
)

// ContextKeyAuthState is the Gin context key for the session's AuthState.
const ContextKeyAuthState = "auth_state"

// LoadSession reads the session slot and attaches the resulting AuthState to
// both the Gin context and the request context. A slot store failure is
// logged and the request proceeds as anonymous.
func LoadSession(store session.Store, log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("component", "session").Logger()
	return func(c *gin.Context) {
		st, err := store.Load(c)
		if err != nil {
			log.Warn().Err(err).Str("request_id", c.GetString(response.ContextKeyRequestID)).Msg("session load failed")
			st = session.Anonymous()
		}
		SetAuthState(c, st)
		c.Next()
	}
}

// SetAuthState replaces the AuthState seen by the rest of the request.
func SetAuthState(c *gin.Context, st session.AuthState) {
	c.Set(ContextKeyAuthState, st)
	c.Request = c.Request.WithContext(session.WithState(c.Request.Context(), st))
}

// GetAuthState returns the AuthState of the request, Anonymous if none was
// loaded.
func GetAuthState(c *gin.Context) session.AuthState {
	if v, ok := c.Get(ContextKeyAuthState); ok {
		if st, ok := v.(session.AuthState); ok {
			return st
		}
	}
	return session.Anonymous()
}

// RequireAdministrator rejects requests whose session is not authenticated.
func RequireAdministrator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetAuthState(c).IsAuthenticated() {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionRequired)
			return
		}
		c.Next()
	}
}
