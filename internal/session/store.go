package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sample-hr/employee-admin/internal/config"
)

// Store keeps the single per-session slot holding the authenticated
// administrator's name. Expiry is the store's business.
type Store interface {
	// Load reads the slot of the requesting session.
	Load(c *gin.Context) (AuthState, error)
	// Save authenticates the session as name, replacing any previous slot.
	Save(c *gin.Context, name string) error
	// Clear discards everything held for the session. Clearing an
	// anonymous session is a no-op.
	Clear(c *gin.Context) error
}

// cookieOptions are shared by the stores that keep an opaque session id in
// a cookie.
type cookieOptions struct {
	idle   time.Duration
	secure bool
}

func (o cookieOptions) sessionID(c *gin.Context) string {
	id, err := c.Cookie(config.SessionKey.CookieName())
	if err != nil {
		return ""
	}
	return id
}

func (o cookieOptions) setID(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionKey.CookieName(), id, int(o.idle.Seconds()), "/", "", o.secure, true)
}

func (o cookieOptions) dropID(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionKey.CookieName(), "", -1, "/", "", o.secure, true)
}
