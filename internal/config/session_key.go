package config

import (
	"fmt"
)

type SessionKeyStruct struct{}

func NewSessionKeyStruct() *SessionKeyStruct {
	return &SessionKeyStruct{}
}

// AdministratorNameKey returns the cache key holding the authenticated
// administrator's display name for a browser session.
func (k *SessionKeyStruct) AdministratorNameKey(sessionID string) string {
	return fmt.Sprintf("session:%s:administrator_name", sessionID)
}

// CookieName is the name of the cookie that carries the session reference.
func (k *SessionKeyStruct) CookieName() string {
	return "employee_admin_session"
}

var SessionKey = NewSessionKeyStruct()
