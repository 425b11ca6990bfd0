package cms

import (
	"errors"

	"github.com/google/uuid"
)

// AuthProvider supplies the credential headers attached to every backend
// call. A provider that cannot produce headers must fail; nothing goes out
// unauthenticated.
type AuthProvider interface {
	AuthHeaders() (map[string]string, error)
}

// TokenAuth sends a bearer token plus a fresh per-request nonce header.
type TokenAuth struct {
	token string
}

func NewTokenAuth(token string) *TokenAuth {
	return &TokenAuth{token: token}
}

func (a *TokenAuth) AuthHeaders() (map[string]string, error) {
	if a.token == "" {
		return nil, errors.New("cms auth token is not configured")
	}
	return map[string]string{
		"Authorization":   "Bearer " + a.token,
		"X-Request-Nonce": uuid.NewString(),
	}, nil
}
