package ports

import (
	"time"

	"github.com/ticketflow/ticketflow/internal/core/domain"
)

// TokenSubject is the identity embedded in a session token.
type TokenSubject struct {
	UserID string
	Email  string
	Role   domain.Role
}

// SessionClaims are the verified contents of a session token.
type SessionClaims struct {
	UserID    string
	Email     string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type TokenService interface {
	Issue(subject TokenSubject) (string, error)
	// Verify fails with domain.ErrInvalidToken or domain.ErrExpiredToken.
	Verify(token string) (*SessionClaims, error)
	TTL() time.Duration
}
