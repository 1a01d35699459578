package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/edge-marketplace/marketplace/docs"
	"github.com/edge-marketplace/marketplace/internal/api/handler"
	"github.com/edge-marketplace/marketplace/internal/api/middleware"
	"github.com/edge-marketplace/marketplace/internal/core/domain"
	"github.com/edge-marketplace/marketplace/internal/core/ports"
)

const metricsNamespace = "marketplace"

// Dependencies groups everything the router wires into handlers.
type Dependencies struct {
	Store ports.Store
	// Feed streams store changes to WebSocket clients.
	Feed handler.ChangeFeed
	// Probes are pinged by the readiness endpoint, keyed by name.
	Probes map[string]handler.Pinger
	// Origins admitted by the WebSocket upgrader.
	AllowedOrigins []string
	Logger         zerolog.Logger
	// Registry receives the HTTP request metrics. Defaults to the global registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metricsNamespace,
		Registerer: registerer,
	}))

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(deps.Store)
	profileHandler := handler.NewProfileHandler(deps.Store)
	itemHandler := handler.NewItemHandler(deps.Store)
	moderationHandler := handler.NewModerationHandler(deps.Store)
	messageHandler := handler.NewMessageHandler(deps.Store)
	stateHandler := handler.NewStateHandler(deps.Store)
	session := middleware.Session(deps.Store)

	v1 := e.Group("/v1")

	// --- Session ---
	v1.POST("/session/login", sessionHandler.Login)
	v1.POST("/session/register", sessionHandler.Register)
	v1.DELETE("/session", sessionHandler.Logout)
	v1.GET("/session", sessionHandler.Current)

	// --- Profile ---
	v1.PATCH("/profile", profileHandler.Update, session)
	v1.GET("/profile/stats", profileHandler.Stats, session)
	v1.GET("/my/listings", profileHandler.Listings, session)

	// --- Catalogue ---
	v1.GET("/items", itemHandler.List)
	v1.GET("/items/featured", itemHandler.Featured)
	v1.GET("/items/:id", itemHandler.Get)
	v1.POST("/items", itemHandler.Create, session)
	v1.POST("/items/:id/reviews", itemHandler.AddReview, session)

	// --- Moderation ---
	mod := v1.Group("/moderation", session, middleware.RBAC(domain.RoleModerator))
	mod.GET("/items", moderationHandler.Queue)
	mod.PATCH("/items/:id/status", moderationHandler.SetStatus)

	// --- Messaging ---
	v1.GET("/conversations", messageHandler.Inbox, session)
	v1.GET("/conversations/with/:userId", messageHandler.Thread, session)
	v1.POST("/conversations/:id/read", messageHandler.MarkRead, session)
	v1.POST("/messages", messageHandler.Send, session)

	// --- State and change feed ---
	v1.GET("/state", stateHandler.Get)
	if deps.Feed != nil {
		eventsHandler := handler.NewEventsHandler(deps.Feed, deps.AllowedOrigins, deps.Logger)
		v1.GET("/events", eventsHandler.Stream)
	}

	// --- Health probes (no session required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Probes)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the snapshot medium up?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
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
