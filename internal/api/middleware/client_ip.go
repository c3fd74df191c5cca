package middleware

import (
	"net"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ticketflow/ticketflow/internal/core/ports"
)

// ClientIP returns the first X-Forwarded-For entry, then X-Real-IP, then
// the host part of the remote address.
func ClientIP(c echo.Context) string {
	req := c.Request()
	if xff := req.Header.Get(echo.HeaderXForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(req.Header.Get(echo.HeaderXRealIP)); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}

// RequestMeta describes the request for audit records.
func RequestMeta(c echo.Context) ports.RequestMeta {
	return ports.RequestMeta{
		IP:        ClientIP(c),
		UserAgent: c.Request().UserAgent(),
	}
}
