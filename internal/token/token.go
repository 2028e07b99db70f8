package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed covers credentials that do not parse or whose signature
	// does not verify against the configured secret.
	ErrMalformed = errors.New("token: malformed or badly signed credential")
	// ErrExpired covers otherwise valid credentials past their expiry claim.
	ErrExpired = errors.New("token: credential has expired")
)

// Tokens are bearer credentials: possession is full proof of identity until
// expiry. There is no revocation.
const validity = 24 * time.Hour

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and verifies the signed identity tokens used by the portal.
type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue creates a new signed token asserting email, expiring 24 hours from now.
func (s *Service) Issue(email string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("token: signing secret is not configured")
	}
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify validates a token string and returns the embedded email as the
// authenticated identity.
func (s *Service) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrMalformed
	}
	if !tok.Valid {
		return "", ErrMalformed
	}

	return claims.Email, nil
}
