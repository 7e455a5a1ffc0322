package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the signature checked out but the token's
	// lifetime has elapsed.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid covers everything else: bad signature, malformed
	// token, wrong algorithm, missing subject.
	ErrTokenInvalid = errors.New("token is invalid")
)

const defaultTokenTTL = 30 * time.Minute

// TokenService issues and verifies HS256 bearer tokens carrying the user ID
// as the subject claim. Tokens are self-contained; there is no server-side
// session state and no revocation.
type TokenService struct {
	key []byte
	ttl time.Duration
}

// NewTokenService builds a TokenService around the process-wide signing key.
// A zero ttl falls back to 30 minutes.
func NewTokenService(key []byte, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{key: key, ttl: ttl}
}

func (s *TokenService) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the subject claim.
// Expired and invalid tokens are distinct errors so logs can tell a stale
// client from a forged token; callers surface both as unauthorized.
func (s *TokenService) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}

	return claims.Subject, nil
}
