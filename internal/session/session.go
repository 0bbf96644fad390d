// Package session persists the auth session to the durable store and
// reconstructs it at startup. Reconstruction is the only recovery path
// after a restart; there is no server-side session validation call.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/okhotnikov/storefront/internal/models"
	"github.com/okhotnikov/storefront/internal/storage"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// ErrMalformed marks a persisted session that failed validation. The
// caller recovers by discarding it and starting anonymous; it is never
// surfaced to the user.
var ErrMalformed = errors.New("malformed stored session")

type Store struct {
	KV *storage.KV
}

func (s *Store) Save(ctx context.Context, sess models.Session) error {
	raw, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	if err := s.KV.Put(ctx, keyToken, sess.Token); err != nil {
		return err
	}
	return s.KV.Put(ctx, keyUser, string(raw))
}

// Clear removes the persisted session unconditionally.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.KV.Delete(ctx, keyToken); err != nil {
		return err
	}
	return s.KV.Delete(ctx, keyUser)
}

// Load reads the persisted session. A missing session returns (zero,
// false, nil); a present but malformed one returns ErrMalformed so the
// caller can discard it.
func (s *Store) Load(ctx context.Context) (models.Session, bool, error) {
	token, err := s.KV.Get(ctx, keyToken)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Session{}, false, nil
	}
	if err != nil {
		return models.Session{}, false, err
	}

	rawUser, err := s.KV.Get(ctx, keyUser)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Session{}, false, ErrMalformed
	}
	if err != nil {
		return models.Session{}, false, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return models.Session{}, false, ErrMalformed
	}

	sess := models.Session{User: user, Token: token}
	if !sess.Valid() {
		return models.Session{}, false, ErrMalformed
	}
	if tokenExpired(token, time.Now()) {
		return models.Session{}, false, ErrMalformed
	}
	return sess, true, nil
}

// tokenExpired applies a best-effort freshness check: tokens that parse
// as JWTs with an exhausted exp claim are stale. Opaque tokens pass; the
// remote API owns their real validity.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(now)
}
