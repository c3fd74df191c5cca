package middleware

import (
	"net/http"
	"net/url"
	pathpkg "path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
	"github.com/ticketflow/ticketflow/internal/pkg/metrics"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

var publicPages = []string{"/login", "/register", "/forgot-password", "/reset-password"}

// Served by routes of their own, each with its own guard.
var nonPagePrefixes = []string{"/api", "/health", "/metrics", "/swagger"}

// Static files pass the gate. So does any path with a file extension.
var staticPrefixes = []string{"/assets", "/favicon.ico"}

// IsNonPagePath reports whether path belongs to the API or another
// routed surface rather than the SPA.
func IsNonPagePath(path string) bool {
	return underAny(path, nonPagePrefixes)
}

func underAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// RouteGate redirects page navigations by session state. It trusts the
// role inside the token and does not read the user store; the API
// middleware is the authoritative check.
func RouteGate(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			path := req.URL.Path
			if req.Method != http.MethodGet && req.Method != http.MethodHead {
				return next(c)
			}
			if IsNonPagePath(path) || underAny(path, staticPrefixes) || pathpkg.Ext(path) != "" {
				return next(c)
			}

			var claims *ports.SessionClaims
			if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
				// A role outside the table has no landing page; treat it as signed out.
				if verified, err := tokens.Verify(cookie.Value); err == nil && verified.Role.Valid() {
					claims = verified
				}
			}

			if underAny(path, publicPages) {
				if claims != nil {
					metrics.GateRedirectsTotal.WithLabelValues("already_authenticated").Inc()
					return c.Redirect(http.StatusFound, dashboardPath)
				}
				return next(c)
			}

			if claims == nil {
				metrics.GateRedirectsTotal.WithLabelValues("login_required").Inc()
				return c.Redirect(http.StatusFound, loginPath+"?redirect="+url.QueryEscape(req.URL.RequestURI()))
			}

			if path == "/" {
				return c.Redirect(http.StatusFound, dashboardPath)
			}
			if !domain.HasRouteAccess(claims.Role, path) {
				metrics.GateRedirectsTotal.WithLabelValues("forbidden_route").Inc()
				return c.Redirect(http.StatusFound, dashboardPath)
			}
			return next(c)
		}
	}
}
