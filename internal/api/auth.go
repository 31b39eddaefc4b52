package api

import (
	"context"
	"net/http"

	"github.com/uyhome/adminctl/internal/models"
)

// Credentials is the login request body.
type Credentials struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Login authenticates against the API. On success the server sets a session
// cookie which the client's jar retains for all subsequent calls.
func (c *Client) Login(ctx context.Context, creds Credentials) (models.User, error) {
	var u models.User
	err := c.doJSON(ctx, "log in", http.MethodPost, "/auth/login/", nil, creds, &u)
	return u, err
}

// Logout invalidates the current session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, "log out", http.MethodPost, "/auth/logout/", nil, nil, nil)
}

// CheckSession probes a protected endpoint. A nil error means the session
// cookie is still valid.
func (c *Client) CheckSession(ctx context.Context) error {
	return c.do(ctx, "check session", http.MethodGet, "/auth/check/", nil, "", nil, nil)
}

// Me fetches the full record of the currently authenticated user.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var u models.User
	err := c.do(ctx, "fetch current user", http.MethodGet, "/auth/me/", nil, "", nil, &u)
	return u, err
}
