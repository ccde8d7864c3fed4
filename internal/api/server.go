// Package api serves the storefront over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/store"
)

const (
	defaultRequestTimeout = 30 * time.Second
	shutdownTimeout       = 10 * time.Second
)

// Advisor answers search and product-advice requests.
type Advisor interface {
	Search(ctx context.Context, req advisor.SearchRequest) (advisor.SearchResponse, advisor.Source, error)
	ProductAdvice(ctx context.Context, req advisor.AdviceRequest) (advisor.AdviceResponse, advisor.Source, error)
}

// Deps are the collaborators the server needs.
type Deps struct {
	Catalog  *catalog.Catalog
	Advisor  Advisor
	Sessions *store.Manager
	OrderIDs store.OrderIDs
	Logger   *slog.Logger
	// Now and QuoteRef default to time.Now and uuid.NewString.
	Now            func() time.Time
	QuoteRef       func() string
	RequestTimeout time.Duration
}

// Server is the storefront HTTP server.
type Server struct {
	echo     *echo.Echo
	catalog  *catalog.Catalog
	advisor  Advisor
	sessions *store.Manager
	orderIDs store.OrderIDs
	logger   *slog.Logger
	now      func() time.Time
	quoteRef func() string
	timeout  time.Duration
}

// New builds a server with every route registered.
func New(deps Deps) (*Server, error) {
	if deps.Catalog == nil || deps.Advisor == nil || deps.Sessions == nil || deps.OrderIDs == nil {
		return nil, errors.New("api: catalog, advisor, sessions and order ids are required")
	}

	s := &Server{
		catalog:  deps.Catalog,
		advisor:  deps.Advisor,
		sessions: deps.Sessions,
		orderIDs: deps.OrderIDs,
		logger:   deps.Logger,
		now:      deps.Now,
		quoteRef: deps.QuoteRef,
		timeout:  deps.RequestTimeout,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.quoteRef == nil {
		s.quoteRef = uuid.NewString
	}
	if s.timeout <= 0 {
		s.timeout = defaultRequestTimeout
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				s.logger.Warn("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			s.logger.Info("request", attrs...)
			return nil
		},
	}))
	e.Use(s.requestTimeout)

	s.echo = e
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")
	api.GET("/health", s.health)

	s.registerCatalogRoutes(api)
	s.registerAdvisorRoutes(api)
	s.registerSessionRoutes(api)
	s.registerQuoteRoutes(api)
}

// ServeHTTP lets the server be used as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Run listens on address until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("storefront listening", "address", address)
		if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down storefront")
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (s *Server) requestTimeout(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), s.timeout)
		defer cancel()
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"products": s.catalog.Len(),
		"sessions": s.sessions.Len(),
	})
}
