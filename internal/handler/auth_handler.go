package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sample-hr/employee-admin/internal/middleware"
	"github.com/sample-hr/employee-admin/internal/response"
	"github.com/sample-hr/employee-admin/internal/service"
	"github.com/sample-hr/employee-admin/internal/session"
)

// Locations a client is sent to after a state change.
const (
	LocationLogin     = "/login"
	LocationEmployees = "/employees"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService *service.AuthService
	sessions    session.Store
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, sessions session.Store, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		log:         log.With().Str("component", "auth_handler").Logger(),
	}
}

// Login godoc
// POST /login
// Authenticates the session with a mail address and password.
func (h *AuthHandler) Login(c *gin.Context) {
	raw, err := readForm(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	st, err := h.authService.Login(c.Request.Context(), raw)
	if err != nil {
		fail(c, err, raw)
		return
	}

	name, _ := st.AdministratorName()
	if err := h.sessions.Save(c, name); err != nil {
		h.log.Error().Err(err).Msg("failed to save session")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	middleware.SetAuthState(c, st)

	response.Success(c, http.StatusOK, gin.H{
		"administrator_name": name,
		"redirect":           LocationEmployees,
	})
}

// Logout godoc
// POST /logout
// Discards the session. Logging out of an anonymous session succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	st := h.authService.Logout(middleware.GetAuthState(c))
	if err := h.sessions.Clear(c); err != nil {
		h.log.Error().Err(err).Msg("failed to clear session")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	middleware.SetAuthState(c, st)

	response.Success(c, http.StatusOK, gin.H{"redirect": LocationLogin})
}
