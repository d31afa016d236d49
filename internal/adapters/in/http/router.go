package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

// HTTPMetrics receives request measurements.
type HTTPMetrics interface {
	Registry() *prometheus.Registry
	ObserveRequest(method, path string, status int, duration time.Duration)
}

// RouterConfig holds the cross-cutting settings of the HTTP surface.
type RouterConfig struct {
	Logger  *slog.Logger
	Metrics HTTPMetrics
	// AssignmentRateLimit caps batch assignment requests per second; zero disables it.
	AssignmentRateLimit float64
}

// NewRouter builds the echo instance: middleware, API routes, metrics and swagger UI.
func NewRouter(ctx context.Context, server *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	validator, err := openapiValidator(doc)
	if err != nil {
		return nil, err
	}

	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		e.Use(requestMetrics(cfg.Metrics))
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	e.GET("/health", server.Health)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(swaggerInstance)))

	api := e.Group("/api", validator)
	api.POST("/centers", server.CreateCenter)
	api.GET("/centers", server.GetCenters)
	api.PATCH("/centers/:id", withCenterID(server.UpdateCenter))
	api.DELETE("/centers/:id", withCenterID(server.DeleteCenter))
	api.POST("/orders", server.CreateOrder)
	api.GET("/orders", server.GetOrders)

	var assignMiddleware []echo.MiddlewareFunc
	if cfg.AssignmentRateLimit > 0 {
		assignMiddleware = append(assignMiddleware, assignmentRateLimiter(cfg.AssignmentRateLimit))
	}
	api.POST("/orders/order-assignations", server.AssignOrders, assignMiddleware...)

	return e, nil
}

// withCenterID binds the {id} path parameter the way generated oapi wrappers do.
func withCenterID(handler func(echo.Context, int64) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var id int64

		err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id, runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, "Invalid format for parameter id: "+err.Error()))
		}

		return handler(ctx, id)
	}
}

// assignmentRateLimiter applies one limit to every client, as batches are global.
func assignmentRateLimiter(limit float64) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limit),
		Burst:     1,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(echo.Context) (string, error) {
			return "order-assignations", nil
		},
		DenyHandler: func(ctx echo.Context, _ string, _ error) error {
			return ctx.JSON(http.StatusTooManyRequests, newError(http.StatusTooManyRequests, "Too many assignment requests"))
		},
	})
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}

// requestMetrics labels requests by route template, not raw path, to bound cardinality.
func requestMetrics(m HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.ObserveRequest(c.Request().Method, path, c.Response().Status, time.Since(start))
			return nil
		}
	}
}
