package store

import "github.com/okhotnikov/storefront/internal/models"

// AuthStatus is the auth slice state machine.
type AuthStatus string

const (
	AuthAnonymous      AuthStatus = "anonymous"
	AuthAuthenticating AuthStatus = "authenticating"
	AuthAuthenticated  AuthStatus = "authenticated"
	AuthError          AuthStatus = "auth_error"
)

type AuthState struct {
	Status AuthStatus
	User   *models.User
	Token  string
	Error  string
}

func (st AuthState) IsAuthenticated() bool {
	return st.Status == AuthAuthenticated
}

type AuthIntent interface {
	Intent
	authIntent()
}

type LoginPending struct{}

type LoginFulfilled struct {
	Session models.Session
}

type LoginRejected struct {
	Err string
}

// SessionRestored replays a session loaded from durable storage during
// the explicit startup bootstrap. It carries the same payload as a
// fulfilled login but never transits through authenticating.
type SessionRestored struct {
	Session models.Session
}

type LoggedOut struct{}

type ClearAuthError struct{}

func (LoginPending) intent()        {}
func (LoginPending) authIntent()    {}
func (LoginFulfilled) intent()      {}
func (LoginFulfilled) authIntent()  {}
func (LoginRejected) intent()       {}
func (LoginRejected) authIntent()   {}
func (SessionRestored) intent()     {}
func (SessionRestored) authIntent() {}
func (LoggedOut) intent()           {}
func (LoggedOut) authIntent()       {}
func (ClearAuthError) intent()      {}
func (ClearAuthError) authIntent()  {}

func reduceAuth(st AuthState, in AuthIntent) AuthState {
	switch in := in.(type) {
	case LoginPending:
		st.Status = AuthAuthenticating
		st.Error = ""
	case LoginFulfilled:
		u := in.Session.User
		st.Status = AuthAuthenticated
		st.User = &u
		st.Token = in.Session.Token
		st.Error = ""
	case SessionRestored:
		u := in.Session.User
		st.Status = AuthAuthenticated
		st.User = &u
		st.Token = in.Session.Token
		st.Error = ""
	case LoginRejected:
		st.Status = AuthError
		st.User = nil
		st.Token = ""
		st.Error = in.Err
	case LoggedOut:
		st = AuthState{Status: AuthAnonymous}
	case ClearAuthError:
		st.Error = ""
		if st.Status == AuthError {
			st.Status = AuthAnonymous
		}
	}
	return st
}
