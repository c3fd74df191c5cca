package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/ticketflow/ticketflow/docs"
	"github.com/ticketflow/ticketflow/internal/api/handler"
	"github.com/ticketflow/ticketflow/internal/api/middleware"
	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
)

// Dependencies is everything the HTTP layer needs. Nil optional fields
// disable the feature they back.
type Dependencies struct {
	Auth      ports.AuthService
	UserAdmin ports.UserAdminService
	Users     middleware.UserLookup
	Tickets   ports.TicketService
	AuditLog  handler.AuditLister
	Tokens    ports.TokenService
	Limiter   ports.AttemptLimiter
	Recorder  ports.AuditRecorder

	// Readiness checks by dependency name.
	Checks map[string]handler.DependencyCheck

	// Registerer and Gatherer back the HTTP metrics and /metrics. Tests
	// pass a fresh registry; nil means the default one.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	// WebRoot is the built SPA. Empty disables static serving.
	WebRoot      string
	SecureCookie bool
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	registerer, gatherer := deps.Registerer, deps.Gatherer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "ticketflow",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	authn := middleware.NewAuthenticator(deps.Tokens, deps.Users, deps.Log)
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Tokens, deps.SecureCookie)
	userHandler := handler.NewUserHandler(deps.UserAdmin)
	ticketHandler := handler.NewTicketHandler(deps.Tickets)
	auditHandler := handler.NewAuditHandler(deps.AuditLog)

	// --- Session routes ---
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	loginChain := []echo.MiddlewareFunc{}
	if deps.Limiter != nil {
		loginChain = append(loginChain, middleware.LoginRateLimit(deps.Limiter, deps.Recorder, deps.Log))
	}
	authGroup.POST("/login", authHandler.Login, loginChain...)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authn.RequireAuth(middleware.RequireOptions{}))

	// --- User administration ---
	users := e.Group("/api/users")
	users.GET("", userHandler.List, authn.RequireAuth(middleware.Permissions(domain.PermUsersView)))
	users.POST("", userHandler.Create, authn.RequireAuth(middleware.Permissions(domain.PermUsersCreate)))
	users.PATCH("/:id/role", userHandler.ChangeRole, authn.RequireAuth(middleware.Permissions(domain.PermUsersUpdate)))
	users.DELETE("/:id", userHandler.Delete, authn.RequireAuth(middleware.Permissions(domain.PermUsersDelete)))

	// --- Tickets and audit ---
	e.GET("/api/tickets", ticketHandler.List, authn.RequireAuth(middleware.Permissions(domain.PermTicketsViewOwn)))
	e.GET("/api/audit-logs", auditHandler.List, authn.RequireAuth(middleware.Permissions(domain.PermAuditView)))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Checks, deps.Log)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Metrics and docs ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Pages: route gate in front of the SPA shell ---
	e.Use(middleware.RouteGate(deps.Tokens))
	if deps.WebRoot != "" {
		e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Root:  deps.WebRoot,
			HTML5: true,
			Skipper: func(c echo.Context) bool {
				return middleware.IsNonPagePath(c.Request().URL.Path)
			},
		}))
	}

	return e
}
