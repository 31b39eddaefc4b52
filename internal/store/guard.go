package store

import "context"

// GuardState is the outcome of one guarded entry.
type GuardState int

const (
	// StateChecking is the initial state while the session probe runs.
	StateChecking GuardState = iota
	// StateAuthenticated means the wrapped content may render.
	StateAuthenticated
	// StateUnauthenticated means the caller must redirect to login and
	// render nothing.
	StateUnauthenticated
)

// Guard protects a screen: each entry re-validates the session and, when the
// session is valid but no user record is cached, loads it before admitting
// the caller.
type Guard struct {
	session *Session
}

func NewGuard(session *Session) *Guard {
	return &Guard{session: session}
}

// Ensure runs the checking transition and returns the terminal state for
// this entry.
func (g *Guard) Ensure(ctx context.Context) (GuardState, error) {
	if err := g.session.CheckAuth(ctx); err != nil {
		return StateUnauthenticated, err
	}
	if !g.session.IsAuthenticated() {
		return StateUnauthenticated, nil
	}
	if g.session.User() == nil {
		if err := g.session.RefreshUserData(ctx); err != nil {
			return StateUnauthenticated, err
		}
	}
	return StateAuthenticated, nil
}
