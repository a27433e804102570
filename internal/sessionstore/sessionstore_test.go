package sessionstore_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocket-crm/internal/sessionstore"
)

func newTestSessionStore(t *testing.T) *sessionstore.BuntDBSessionStore {
	t.Helper()
	s, err := sessionstore.NewBuntDBSessionStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestSessionStore(t)

	require.NoError(t, s.SaveSession("tok-1", time.Now().Add(time.Hour)))

	exists, err := s.SessionExists("tok-1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.DeleteSession("tok-1"))

	exists, err = s.SessionExists("tok-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSessionExists_UnknownToken(t *testing.T) {
	s := newTestSessionStore(t)

	exists, err := s.SessionExists("never-issued")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteSession_Idempotent(t *testing.T) {
	s := newTestSessionStore(t)

	require.NoError(t, s.DeleteSession("missing"))
}
