package session

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemoryStore keeps slots in process memory. It suits a single instance and
// tests; slots are lost on restart.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string]memorySlot
	now   func() time.Time
	cookieOptions
}

type memorySlot struct {
	name    string
	expires time.Time
}

// NewMemoryStore creates a MemoryStore whose slots expire after idle.
func NewMemoryStore(idle time.Duration, secure bool) *MemoryStore {
	return &MemoryStore{
		slots:         make(map[string]memorySlot),
		now:           time.Now,
		cookieOptions: cookieOptions{idle: idle, secure: secure},
	}
}

func (s *MemoryStore) Load(c *gin.Context) (AuthState, error) {
	id := s.sessionID(c)
	if id == "" {
		return Anonymous(), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return Anonymous(), nil
	}
	now := s.now()
	if now.After(slot.expires) {
		delete(s.slots, id)
		return Anonymous(), nil
	}

	slot.expires = now.Add(s.idle)
	s.slots[id] = slot
	s.setID(c, id)
	return Authenticated(slot.name), nil
}

func (s *MemoryStore) Save(c *gin.Context, name string) error {
	id := uuid.NewString()

	s.mu.Lock()
	delete(s.slots, s.sessionID(c))
	s.slots[id] = memorySlot{name: name, expires: s.now().Add(s.idle)}
	s.mu.Unlock()

	s.setID(c, id)
	return nil
}

func (s *MemoryStore) Clear(c *gin.Context) error {
	id := s.sessionID(c)
	if id == "" {
		return nil
	}

	s.mu.Lock()
	delete(s.slots, id)
	s.mu.Unlock()

	s.dropID(c)
	return nil
}

// Sweep drops every expired slot and returns how many were dropped.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	dropped := 0
	for id, slot := range s.slots {
		if now.After(slot.expires) {
			delete(s.slots, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of slots held, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}
