// Package session issues and verifies agent/admin session tokens.
//
// A verified token becomes an explicit Session value handed to handlers
// through the echo context; there is no ambient current-user singleton.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	kdb "github.com/psmphuket/portal/pkg/db"
)

type Session struct {
	UserID string   `json:"userId"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   kdb.Role `json:"role"`
}

func (s *Session) Is(role kdb.Role) bool {
	return s != nil && s.Role == role
}

// Admin passes every role gate.
func (s *Session) Allows(roles ...kdb.Role) bool {
	if s == nil {
		return false
	}
	if s.Role == kdb.RoleAdmin {
		return true
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

var ErrInvalidToken = errors.New("invalid session token")

type claims struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  kdb.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

func (i *Issuer) Issue(user *kdb.User, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})
	return token.SignedString(i.secret)
}

func (i *Issuer) Verify(tokenString string) (*Session, error) {
	var c claims
	token, err := jwt.ParseWithClaims(
		tokenString, &c,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return i.secret, nil
		},
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &Session{
		UserID: c.Subject,
		Name:   c.Name,
		Email:  c.Email,
		Role:   c.Role,
	}, nil
}
