package session

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/sample-hr/employee-admin/internal/config"
)

const (
	nameValue = "administrator_name"
	idValue   = "session_id"
)

// CookieStore keeps the slot inside a signed and encrypted cookie. Each
// cookie carries a session id; Clear revokes that id for as long as a copy of
// the cookie could still verify, so a cookie captured before logout stops
// authenticating. Revocations live in process memory and are not shared
// between instances.
type CookieStore struct {
	store *sessions.CookieStore
	idle  time.Duration
	now   func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewCookieStore derives the signing and encryption keys from secret.
func NewCookieStore(secret string, idle time.Duration, secure bool) *CookieStore {
	hashKey := sha256.Sum256([]byte("hash:" + secret))
	blockKey := sha256.Sum256([]byte("block:" + secret))

	store := sessions.NewCookieStore(hashKey[:], blockKey[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(idle.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(store.Options.MaxAge)

	return &CookieStore{
		store:   store,
		idle:    idle,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

func (s *CookieStore) Load(c *gin.Context) (AuthState, error) {
	sess, err := s.store.New(c.Request, config.SessionKey.CookieName())
	if err != nil {
		// A cookie that fails verification is treated as no cookie.
		return Anonymous(), nil
	}

	name, ok := sess.Values[nameValue].(string)
	if !ok {
		return Anonymous(), nil
	}
	id, _ := sess.Values[idValue].(string)
	if id == "" || s.isRevoked(id) {
		return Anonymous(), nil
	}

	if err := sess.Save(c.Request, c.Writer); err != nil {
		return Anonymous(), fmt.Errorf("refresh session: %w", err)
	}
	return Authenticated(name), nil
}

func (s *CookieStore) Save(c *gin.Context, name string) error {
	sess, _ := s.store.New(c.Request, config.SessionKey.CookieName())
	if id, ok := sess.Values[idValue].(string); ok && id != "" {
		s.revoke(id)
	}
	sess.Values = map[interface{}]interface{}{nameValue: name, idValue: uuid.NewString()}
	if err := sess.Save(c.Request, c.Writer); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *CookieStore) Clear(c *gin.Context) error {
	sess, _ := s.store.New(c.Request, config.SessionKey.CookieName())
	if id, ok := sess.Values[idValue].(string); ok && id != "" {
		s.revoke(id)
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	if err := sess.Save(c.Request, c.Writer); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// revoke rejects id until every cookie issued for it has expired.
func (s *CookieStore) revoke(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)
	s.revoked[id] = now.Add(s.idle)
}

func (s *CookieStore) isRevoked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[id]
	return ok
}

// Sweep forgets revocations whose cookies can no longer verify and returns
// how many were dropped.
func (s *CookieStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *CookieStore) sweepLocked(now time.Time) int {
	dropped := 0
	for id, until := range s.revoked {
		if now.After(until) {
			delete(s.revoked, id)
			dropped++
		}
	}
	return dropped
}

// Revoked returns the number of session ids currently revoked.
func (s *CookieStore) Revoked() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.revoked)
}
