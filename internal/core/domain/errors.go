package domain

import "errors"

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrRateLimited        = errors.New("too many login attempts")

	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("a user with this email already exists")
	ErrUserHasTickets = errors.New("user owns or is assigned tickets")
	ErrUnknownRole    = errors.New("unknown role")
	ErrInvalidRole    = errors.New("invalid role")
)

// ValidationError carries field-level messages for a rejected request body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// RateLimitError reports a rejected login attempt and when the caller may
// try again. It matches ErrRateLimited under errors.Is.
type RateLimitError struct {
	RetryAfter int64 // unix seconds
}

func (e *RateLimitError) Error() string { return ErrRateLimited.Error() }

func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }
