// Package session tracks whether a browser session belongs to an
// authenticated administrator.
package session

import "context"

// AuthState is the immutable authentication state of one session: either
// anonymous or authenticated as a named administrator.
type AuthState struct {
	name          string
	authenticated bool
}

// Anonymous is the state of a session nobody has logged into.
func Anonymous() AuthState { return AuthState{} }

// Authenticated is the state after a successful login by name.
func Authenticated(name string) AuthState {
	return AuthState{name: name, authenticated: true}
}

// IsAuthenticated reports whether an administrator is logged in.
func (s AuthState) IsAuthenticated() bool { return s.authenticated }

// AdministratorName returns the logged-in administrator's display name.
func (s AuthState) AdministratorName() (string, bool) {
	return s.name, s.authenticated
}

func (s AuthState) String() string {
	if !s.authenticated {
		return "anonymous"
	}
	return "authenticated(" + s.name + ")"
}

type stateKey struct{}

// WithState returns a copy of ctx carrying st.
func WithState(ctx context.Context, st AuthState) context.Context {
	return context.WithValue(ctx, stateKey{}, st)
}

// FromContext returns the state stored in ctx, or Anonymous when none was.
func FromContext(ctx context.Context) AuthState {
	if st, ok := ctx.Value(stateKey{}).(AuthState); ok {
		return st
	}
	return Anonymous()
}
