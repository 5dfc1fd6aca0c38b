// Package session implements the signed session token and its cookie
// transport. Tokens are stateless: nothing is stored server-side, so a
// token is valid until it expires or the signing secret rotates.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// DefaultTTL is how long an issued session token stays valid.
const DefaultTTL = 24 * time.Hour

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, malformed payload, or past expiry.
var ErrInvalidToken = errors.New("invalid session token")

// Codec issues and verifies HMAC-signed session tokens binding a local
// user id with an expiry.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a codec signing with the given secret. A non-positive
// ttl falls back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue produces a signed token embedding the user id, issue time, and
// expiry.
func (c *Codec) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	token, err := jwt.NewBuilder().
		Subject(userID.String()).
		IssuedAt(now).
		Expiration(now.Add(c.ttl)).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build session token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, c.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return string(signed), nil
}

// Verify checks the token's signature and expiry and returns the embedded
// user id. Verification is strictly pass/fail against the current time;
// there is no refresh.
func (c *Codec) Verify(token string) (uuid.UUID, error) {
	parsed, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, c.secret),
		jwt.WithValidate(true),
	)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(parsed.Subject())
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
