package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sample-hr/employee-admin/internal/config"
)

// RedisStore keeps the slot in Redis under a random session id carried by
// an HttpOnly cookie. Every read refreshes the idle TTL.
type RedisStore struct {
	rdb redis.Cmdable
	cookieOptions
}

// NewRedisStore creates a RedisStore whose slots expire after idle.
func NewRedisStore(rdb redis.Cmdable, idle time.Duration, secure bool) *RedisStore {
	return &RedisStore{rdb: rdb, cookieOptions: cookieOptions{idle: idle, secure: secure}}
}

func (s *RedisStore) Load(c *gin.Context) (AuthState, error) {
	id := s.sessionID(c)
	if id == "" {
		return Anonymous(), nil
	}

	name, err := s.rdb.GetEx(c.Request.Context(), config.SessionKey.AdministratorNameKey(id), s.idle).Result()
	if errors.Is(err, redis.Nil) {
		return Anonymous(), nil
	}
	if err != nil {
		return Anonymous(), fmt.Errorf("load session: %w", err)
	}

	s.setID(c, id)
	return Authenticated(name), nil
}

// Save issues a fresh session id so an id seen before login is never
// authenticated.
func (s *RedisStore) Save(c *gin.Context, name string) error {
	ctx := c.Request.Context()
	if old := s.sessionID(c); old != "" {
		if err := s.rdb.Del(ctx, config.SessionKey.AdministratorNameKey(old)).Err(); err != nil {
			return fmt.Errorf("drop previous session: %w", err)
		}
	}

	id := uuid.NewString()
	if err := s.rdb.Set(ctx, config.SessionKey.AdministratorNameKey(id), name, s.idle).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.setID(c, id)
	return nil
}

func (s *RedisStore) Clear(c *gin.Context) error {
	id := s.sessionID(c)
	if id == "" {
		return nil
	}

	if err := s.rdb.Del(c.Request.Context(), config.SessionKey.AdministratorNameKey(id)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.dropID(c)
	return nil
}
