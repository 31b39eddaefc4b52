package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uyhome/adminctl/internal/api"
	"github.com/uyhome/adminctl/internal/models"
)

func TestGuard_AuthenticatedLoadsMissingUser(t *testing.T) {
	client := &fakeAuth{MeRet: models.User{ID: 3, Name: "admin"}}
	g := NewGuard(NewSession(client))

	state, err := g.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, state)
	// the user record was loaded before leaving the checking state
	assert.Equal(t, 1, client.MeCalls)
}

func TestGuard_Unauthenticated(t *testing.T) {
	client := &fakeAuth{CheckErr: &api.RequestError{Op: "check session", StatusCode: 401}}
	g := NewGuard(NewSession(client))

	state, err := g.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateUnauthenticated, state)
	assert.Equal(t, 0, client.MeCalls)
}

func TestGuard_UserAlreadyCached(t *testing.T) {
	client := &fakeAuth{LoginRet: models.User{ID: 3}}
	s := NewSession(client)
	require.NoError(t, s.Login(context.Background(), "+998901234567", "secret"))

	g := NewGuard(s)
	state, err := g.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAuthenticated, state)
	assert.Equal(t, 0, client.MeCalls)
}

func TestGuard_RefreshFailureDenies(t *testing.T) {
	client := &fakeAuth{MeErr: &api.RequestError{Op: "fetch current user", StatusCode: 500}}
	g := NewGuard(NewSession(client))

	state, err := g.Ensure(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, state)
}
