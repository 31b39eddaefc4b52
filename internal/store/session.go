package store

import (
	"context"
	"sync"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/models"
)

// AuthClient is the slice of the API client the session store depends on.
// *api.Client satisfies it; tests substitute a fake.
type AuthClient interface {
	Login(ctx context.Context, creds api.Credentials) (models.User, error)
	Logout(ctx context.Context) error
	CheckSession(ctx context.Context) error
	Me(ctx context.Context) (models.User, error)
}

// Session holds the process-wide authentication state: the current user and
// whether the session cookie is still honored by the server. It starts in
// the loading state and becomes stable after the first CheckAuth resolves.
type Session struct {
	mu            sync.Mutex
	client        AuthClient
	user          *models.User
	authenticated bool
	loading       bool
	err           string
}

func NewSession(client AuthClient) *Session {
	return &Session{client: client, loading: true}
}

// CheckAuth probes a protected endpoint. A 2xx answer marks the session
// authenticated; anything else marks it unauthenticated without treating
// the rejection as an error.
func (s *Session) CheckAuth(ctx context.Context) error {
	err := s.client.CheckSession(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.authenticated = false
		s.user = nil
		return nil
	}
	s.authenticated = true
	return nil
}

// RefreshUserData fetches the full user record when the session is
// authenticated but no user object is cached yet.
func (s *Session) RefreshUserData(ctx context.Context) error {
	s.mu.Lock()
	needed := s.authenticated && s.user == nil
	s.mu.Unlock()
	if !needed {
		return nil
	}

	u, err := s.client.Me(ctx)
	if err != nil {
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.user = &u
	s.err = ""
	s.mu.Unlock()
	return nil
}

// Login authenticates and caches the returned user. The error is both
// recorded for display and returned so the login prompt can react inline.
func (s *Session) Login(ctx context.Context, phone, password string) error {
	u, err := s.client.Login(ctx, api.Credentials{Phone: phone, Password: password})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.authenticated = false
		s.user = nil
		s.err = err.Error()
		return err
	}

	s.user = &u
	s.authenticated = true
	s.err = ""
	return nil
}

// Logout invalidates the session server-side and clears local state either
// way; a failed logout call still leaves the console logged out.
func (s *Session) Logout(ctx context.Context) error {
	err := s.client.Logout(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
	s.err = ""
	return err
}

// User returns the cached user record, nil when none is loaded.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
