package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
	"github.com/ticketflow/ticketflow/internal/pkg/metrics"
)

// LoginRateLimit counts every request against the client IP. Over the
// limit it fails with a *domain.RateLimitError. If the store errors the
// request goes through.
func LoginRateLimit(limiter ports.AttemptLimiter, audit ports.AuditRecorder, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			meta := RequestMeta(c)

			res, err := limiter.Hit(c.Request().Context(), meta.IP)
			if err != nil {
				log.Error().Err(err).Str("ip", meta.IP).Msg("rate limiter unavailable, admitting request")
				return next(c)
			}
			if res.Allowed {
				return next(c)
			}

			metrics.LoginRateLimitedTotal.Inc()
			log.Warn().Str("ip", meta.IP).Time("reset_at", res.ResetAt).Msg("login rate limit exceeded")
			if audit != nil {
				audit.Record(domain.AuditRecord{
					ID:        uuid.NewString(),
					Action:    domain.AuditLoginRateLimited,
					Subject:   meta.IP,
					IP:        meta.IP,
					UserAgent: meta.UserAgent,
					CreatedAt: time.Now().UTC(),
				})
			}
			return &domain.RateLimitError{RetryAfter: res.ResetAt.Unix()}
		}
	}
}
