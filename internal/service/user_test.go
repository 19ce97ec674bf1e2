// FILE: internal/service/user_test.go
package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkers/internal/storage"
)

func newStoredService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.NewStore(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	require.NoError(t, store.InitDB())
	svc := New(store, []byte("test-secret"))
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestUserOperationsRequireStorage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateUser("alice", "alice@example.com", "password1")
	assert.Error(t, err)
	_, err = svc.AuthenticateUser("alice", "password1")
	assert.Error(t, err)
	_, err = svc.GetUserByID("some-id")
	assert.Error(t, err)
	assert.Error(t, svc.UpdateLastLogin("some-id"))
}

func TestLastLoginSurfaced(t *testing.T) {
	svc := newStoredService(t)

	created, err := svc.CreateUser("alice", "alice@example.com", "password1")
	require.NoError(t, err)

	// Never logged in yet
	user, err := svc.GetUserByID(created.UserID)
	require.NoError(t, err)
	assert.Nil(t, user.LastLogin)

	require.NoError(t, svc.UpdateLastLogin(created.UserID))

	user, err = svc.GetUserByID(created.UserID)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
	assert.False(t, user.LastLogin.IsZero())

	// Authentication reports it too
	authed, err := svc.AuthenticateUser("alice", "password1")
	require.NoError(t, err)
	require.NotNil(t, authed.LastLogin)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
	_, _, err = svc.ValidateToken("")
	assert.Error(t, err)
}
