package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
	"github.com/ticketflow/ticketflow/internal/core/service"
)

func runGate(t *testing.T, tokens *service.TokenService, target, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := RouteGate(tokens)(func(c echo.Context) error {
		return c.String(http.StatusOK, "page")
	})(c)
	if err != nil {
		t.Fatalf("gate error: %v", err)
	}
	return rec
}

func TestRouteGate(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	token := func(role domain.Role) string {
		tok, err := tokens.Issue(ports.TokenSubject{UserID: "u-" + string(role), Role: role})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		return tok
	}

	cases := []struct {
		name     string
		target   string
		cookie   string
		status   int
		location string
	}{
		{"anonymous page", "/tickets/42?tab=history", "", http.StatusFound, "/login?redirect=%2Ftickets%2F42%3Ftab%3Dhistory"},
		{"invalid token", "/dashboard", "garbage", http.StatusFound, "/login?redirect=%2Fdashboard"},
		{"anonymous login page", "/login", "", http.StatusOK, ""},
		{"anonymous reset sub-path", "/reset-password/abc", "", http.StatusOK, ""},
		{"logged in on login", "/login", token(domain.RoleAgent), http.StatusFound, "/dashboard"},
		{"requester on admin", "/admin/users", token(domain.RoleRequester), http.StatusFound, "/dashboard"},
		{"agent on manager", "/manager", token(domain.RoleAgent), http.StatusFound, "/dashboard"},
		{"agent on agent", "/agent/queue", token(domain.RoleAgent), http.StatusOK, ""},
		{"manager on admin", "/admin/users", token(domain.RoleManager), http.StatusOK, ""},
		{"root", "/", token(domain.RoleRequester), http.StatusFound, "/dashboard"},
		{"api is skipped", "/api/users", "", http.StatusOK, ""},
		{"health is skipped", "/health", "", http.StatusOK, ""},
		{"assets are skipped", "/assets/app.js", "", http.StatusOK, ""},
		{"files are skipped", "/robots.txt", "", http.StatusOK, ""},
		{"prefix look-alike", "/administrator", token(domain.RoleAdmin), http.StatusFound, "/dashboard"},
		{"unknown role on dashboard", "/dashboard", token("superuser"), http.StatusFound, "/login?redirect=%2Fdashboard"},
		{"unknown role on login", "/login", token("superuser"), http.StatusOK, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runGate(t, tokens, tc.target, tc.cookie)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			if tc.location != "" && rec.Header().Get(echo.HeaderLocation) != tc.location {
				t.Fatalf("expected Location %q, got %q", tc.location, rec.Header().Get(echo.HeaderLocation))
			}
		})
	}
}
