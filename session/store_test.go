package session_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	apperrors "github.com/tenduke/go-sso-client/internal/errors"
	"github.com/tenduke/go-sso-client/session"
	"github.com/tenduke/go-sso-client/session/keyring"
)

const (
	testUserID = "8d195856-4b54-4aa5-b0f0-26a1713d2e69"
	testToken  = "WC9zkOpA57anYEbS6vRmb3eDbac"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(keyring.NewMemory(), keyring.NewMemoryPointer())
	require.NoError(t, err)
	return store
}

func TestNewStore_Validation(t *testing.T) {
	_, err := session.NewStore(nil, keyring.NewMemoryPointer())
	require.Error(t, err)

	_, err = session.NewStore(keyring.NewMemory(), nil)
	require.Error(t, err)
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Store(testUserID, testToken))

	token, ok := store.CurrentToken()
	require.True(t, ok)
	require.Equal(t, testToken, token, "token must round-trip byte for byte")

	userID, ok := store.CurrentUserID()
	require.True(t, ok)
	require.Equal(t, testUserID, userID)

	current, ok := store.Current()
	require.True(t, ok)
	require.Equal(t, session.Session{UserID: testUserID, AccessToken: testToken}, current)
}

func TestStore_NewLoginOverwritesWholeSession(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Store("user-1", "token-1"))
	require.NoError(t, store.Store("user-2", "token-2"))

	userID, _ := store.CurrentUserID()
	token, _ := store.CurrentToken()
	require.Equal(t, "user-2", userID)
	require.Equal(t, "token-2", token)
}

func TestStore_EmptyTokenIsSignedOutSentinel(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Store(testUserID, ""))

	_, ok := store.CurrentToken()
	require.False(t, ok, "empty stored token means signed out")

	userID, ok := store.CurrentUserID()
	require.True(t, ok, "user id pointer is returned verbatim")
	require.Equal(t, testUserID, userID)
}

func TestStore_Reset(t *testing.T) {
	t.Run("clears token and pointer", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Store(testUserID, testToken))

		store.Reset()

		_, ok := store.CurrentToken()
		require.False(t, ok)
		_, ok = store.CurrentUserID()
		require.False(t, ok)
	})

	t.Run("idempotent", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Store(testUserID, testToken))

		store.Reset()
		store.Reset()

		_, ok := store.CurrentToken()
		require.False(t, ok)
	})

	t.Run("no-op without a session", func(t *testing.T) {
		store := newTestStore(t)
		store.Reset()
		_, ok := store.CurrentToken()
		require.False(t, ok)
	})
}

func TestStore_SecureWriteFailureLeavesNoPointer(t *testing.T) {
	ring := &failingKeyring{putErr: errors.New("keychain unavailable")}
	pointer := keyring.NewMemoryPointer()
	store, err := session.NewStore(ring, pointer)
	require.NoError(t, err)

	err = store.Store(testUserID, testToken)
	require.Error(t, err)

	_, ok := pointer.Get()
	require.False(t, ok, "pointer must not be written when the secure write fails")
}

func TestStore_ResetDeleteFailureLeavesDanglingPointer(t *testing.T) {
	ring := &failingKeyring{inner: keyring.NewMemory(), deleteErr: errors.New("keychain unavailable")}
	pointer := keyring.NewMemoryPointer()
	store, err := session.NewStore(ring, pointer)
	require.NoError(t, err)
	require.NoError(t, store.Store(testUserID, testToken))

	store.Reset()

	// The deletion fault is reported, not retried; the pointer stays.
	userID, ok := store.CurrentUserID()
	require.True(t, ok)
	require.Equal(t, testUserID, userID)
}

func TestStore_TokenSource(t *testing.T) {
	store := newTestStore(t)

	t.Run("no session", func(t *testing.T) {
		_, err := store.Token()
		require.ErrorIs(t, err, apperrors.ErrNoSession)
	})

	t.Run("bearer token for active session", func(t *testing.T) {
		require.NoError(t, store.Store(testUserID, testToken))
		oauthToken, err := store.Token()
		require.NoError(t, err)
		require.Equal(t, testToken, oauthToken.AccessToken)
		require.Equal(t, "Bearer", oauthToken.TokenType)
	})
}

// failingKeyring wraps an optional inner keyring and fails selected
// operations, for exercising the store's failure paths.
type failingKeyring struct {
	inner     session.Keyring
	putErr    error
	deleteErr error
}

func (f *failingKeyring) Put(account, value string) error {
	if f.putErr != nil {
		return f.putErr
	}
	return f.inner.Put(account, value)
}

func (f *failingKeyring) Get(account string) (string, error) {
	if f.inner == nil {
		return "", apperrors.ErrNotFound
	}
	return f.inner.Get(account)
}

func (f *failingKeyring) Delete(account string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return f.inner.Delete(account)
}
