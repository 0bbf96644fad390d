package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/storefront/internal/models"
)

func session(username, token string) models.Session {
	return models.Session{User: models.User{Username: username}, Token: token}
}

func TestAuth_LoginSuccessPath(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	require.Equal(t, AuthAnonymous, s.Snapshot().Auth.Status)

	s.Dispatch(LoginPending{})
	assert.Equal(t, AuthAuthenticating, s.Snapshot().Auth.Status)

	s.Dispatch(LoginFulfilled{Session: session("mor_2314", "tok")})
	st := s.Snapshot().Auth
	assert.True(t, st.IsAuthenticated())
	require.NotNil(t, st.User)
	assert.Equal(t, "mor_2314", st.User.Username)
	assert.Equal(t, "tok", st.Token)
}

func TestAuth_LoginFailurePath(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(LoginPending{})
	s.Dispatch(LoginRejected{Err: "invalid username or password"})

	st := s.Snapshot().Auth
	assert.Equal(t, AuthError, st.Status)
	assert.False(t, st.IsAuthenticated())
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
	assert.Equal(t, "invalid username or password", st.Error)
}

func TestAuth_SessionRestoredSkipsAuthenticating(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(SessionRestored{Session: session("kevinryan", "tok2")})

	st := s.Snapshot().Auth
	assert.True(t, st.IsAuthenticated())
	assert.Equal(t, "kevinryan", st.User.Username)
}

func TestAuth_LogoutResetsEverything(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(LoginFulfilled{Session: session("mor_2314", "tok")})
	s.Dispatch(LoggedOut{})

	st := s.Snapshot().Auth
	assert.Equal(t, AuthAnonymous, st.Status)
	assert.Nil(t, st.User)
	assert.Empty(t, st.Token)
	assert.Empty(t, st.Error)
}

func TestAuth_LogoutMidAuthentication(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(LoginPending{})
	s.Dispatch(LoggedOut{})
	assert.Equal(t, AuthAnonymous, s.Snapshot().Auth.Status)
}

func TestAuth_ClearErrorReturnsToAnonymous(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(LoginRejected{Err: "nope"})
	s.Dispatch(ClearAuthError{})

	st := s.Snapshot().Auth
	assert.Empty(t, st.Error)
	assert.Equal(t, AuthAnonymous, st.Status)
}
