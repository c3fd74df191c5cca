package middleware

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
	"github.com/ticketflow/ticketflow/internal/pkg/metrics"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "auth-token"

const userContextKey = "auth.user"

// UserLookup resolves the current state of a user by id. It returns
// (nil, nil) when the user no longer exists.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*domain.PublicUser, error)
}

// Authenticator verifies the session cookie and loads the caller.
type Authenticator struct {
	tokens ports.TokenService
	users  UserLookup
	log    zerolog.Logger
}

func NewAuthenticator(tokens ports.TokenService, users UserLookup, log zerolog.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, users: users, log: log}
}

// Authorize resolves the caller and checks opts against the role stored
// now, not the role in the token. It returns domain.ErrUnauthenticated for
// every authentication failure and domain.ErrForbidden when the caller
// lacks a required role or permission. Other errors come from the user
// lookup.
func (a *Authenticator) Authorize(c echo.Context, opts RequireOptions) (*domain.PublicUser, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims, err := a.tokens.Verify(cookie.Value)
	if err != nil {
		a.log.Debug().Err(err).Msg("session token rejected")
		return nil, domain.ErrUnauthenticated
	}

	user, err := a.users.GetUserByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if !user.TokensValidAfter.IsZero() && claims.IssuedAt.Before(user.TokensValidAfter) {
		a.log.Debug().Str("user_id", user.ID).Msg("session token revoked")
		return nil, domain.ErrUnauthenticated
	}

	if !opts.allows(user.Role) {
		return user, domain.ErrForbidden
	}
	return user, nil
}

// RequireAuth rejects the request unless the caller is authenticated and
// satisfies opts. On success the caller is available through CurrentUser.
func (a *Authenticator) RequireAuth(opts RequireOptions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := a.Authorize(c, opts)
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrUnauthenticated):
				metrics.AuthDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return err
			case errors.Is(err, domain.ErrForbidden):
				metrics.AuthDecisionsTotal.WithLabelValues("forbidden").Inc()
				a.log.Info().
					Str("user_id", user.ID).
					Str("role", string(user.Role)).
					Str("path", c.Path()).
					Msg("access denied")
				return err
			default:
				return err
			}

			metrics.AuthDecisionsTotal.WithLabelValues("allowed").Inc()
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the caller stored by RequireAuth, or nil.
func CurrentUser(c echo.Context) *domain.PublicUser {
	u, _ := c.Get(userContextKey).(*domain.PublicUser)
	return u
}
