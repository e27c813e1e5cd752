package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/uniportal/event-portal/docs"
	"github.com/uniportal/event-portal/internal/api/handler"
	"github.com/uniportal/event-portal/internal/api/metrics"
	"github.com/uniportal/event-portal/internal/api/middleware"
	"github.com/uniportal/event-portal/internal/core/policy"
	"github.com/uniportal/event-portal/internal/core/ports"
)

// Dependencies are the services and settings the router is built from.
type Dependencies struct {
	Auth          ports.AuthService
	Events        ports.EventService
	Announcements ports.AnnouncementService
	Inquiries     ports.InquiryService
	Dashboard     ports.DashboardService
	Users         ports.UserService
	Uploads       ports.UploadService

	// Checks are run by the readiness probe, keyed by dependency name.
	Checks map[string]handler.DependencyCheck
	// UploadDir is served under /uploads when set.
	UploadDir   string
	CORSOrigins []string
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	authn := middleware.Authenticate(deps.Auth)
	allow := middleware.Authorize

	// --- Health probes, metrics and docs (no auth required) ---
	health := handler.NewHealthHandler()
	ready := handler.NewHealthDependenciesHandler(deps.Checks)
	e.GET("/health", health.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", ready.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if deps.UploadDir != "" {
		e.Static("/uploads", deps.UploadDir)
	}

	// --- Users ---
	auth := handler.NewAuthHandler(deps.Auth)
	users := e.Group("/users")
	users.POST("/register", auth.Register)
	users.POST("/login", auth.Login)
	users.GET("/me", auth.Me, authn, allow(policy.User, policy.ReadSelf))
	users.POST("/logout", auth.Logout, authn)

	// --- Events ---
	events := handler.NewEventHandler(deps.Events, deps.Uploads)
	eg := e.Group("/events")
	eg.GET("", events.List, allow(policy.Event, policy.List))
	eg.POST("", events.Create, authn, allow(policy.Event, policy.Create))
	eg.POST("/upload", events.Upload, authn, allow(policy.Event, policy.Upload))
	eg.POST("/register/:id", events.Register, authn, allow(policy.Event, policy.Register))
	eg.PUT("/:id", events.Update, authn, allow(policy.Event, policy.Update))
	eg.DELETE("/:id", events.Delete, authn, allow(policy.Event, policy.Delete))

	// --- Announcements ---
	announcements := handler.NewAnnouncementHandler(deps.Announcements)
	ag := e.Group("/announcements", authn)
	ag.GET("", announcements.List, allow(policy.Announcement, policy.List))
	ag.POST("", announcements.Create, allow(policy.Announcement, policy.Create))
	ag.PUT("/:id", announcements.Update, allow(policy.Announcement, policy.Update))
	ag.DELETE("/:id", announcements.Delete, allow(policy.Announcement, policy.Delete))

	// --- Inquiries ---
	inquiries := handler.NewInquiryHandler(deps.Inquiries)
	ig := e.Group("/inquiries", authn)
	ig.GET("", inquiries.List, allow(policy.Inquiry, policy.List))
	ig.GET("/mine", inquiries.Mine, allow(policy.Inquiry, policy.ListOwn))
	ig.GET("/:id", inquiries.Get, allow(policy.Inquiry, policy.Read))
	ig.POST("", inquiries.Create, allow(policy.Inquiry, policy.Create))
	ig.PUT("/:id", inquiries.Resolve, allow(policy.Inquiry, policy.Resolve))

	// --- Admin ---
	admin := handler.NewAdminHandler(deps.Dashboard, deps.Users)
	adm := e.Group("/admin", authn)
	adm.GET("/stats", admin.Stats, allow(policy.Dashboard, policy.Read))
	adm.PATCH("/users/:id/promote", admin.Promote, allow(policy.User, policy.Promote))

	return e
}

// requestLogger writes one zerolog entry per request. Errors are handed to
// the HTTP error handler first so the logged status is the rendered one.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
