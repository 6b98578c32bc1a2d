// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the analytics core over a REST API for the
// dashboard front end.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/encoding/json"

	"github.com/pdiddy/pubflow/internal/chat"
	"github.com/pdiddy/pubflow/internal/dataset"
	"github.com/pdiddy/pubflow/internal/logging"
	"github.com/pdiddy/pubflow/pkg/types"
)

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr = ":8080"

	bodyLimit       = "1M"
	shutdownTimeout = 10 * time.Second
)

// CustomValidator adapts go-playground/validator to echo.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// jsonSerializer encodes responses and decodes request bodies with
// segmentio/encoding.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i any) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("decoding request body: %v", err)).SetInternal(err)
	}
	return nil
}

// New builds the echo instance serving store. A nil assistant answers chat
// requests with the router summary only.
func New(store *dataset.Store, assistant *chat.Assistant, cfg types.Config, logger *log.Logger) *echo.Echo {
	logger = logging.OrDiscard(logger)
	if assistant == nil {
		assistant = chat.NewAssistant(nil, cfg.Chat.SampleSize, logger)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.JSONSerializer = jsonSerializer{}

	e.Use(middleware.CORS())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))
	if cfg.Server.RequestTimeout > 0 {
		e.Use(middleware.ContextTimeout(cfg.Server.RequestTimeout))
	}

	registerRoutes(e, &handlers{
		store:     store,
		assistant: assistant,
		defaults:  cfg.Network,
		logger:    logger,
	})
	return e
}

func requestLogger(logger *log.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Error("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "err", v.Error)
				return nil
			}
			logger.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	})
}

// Run serves e on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, e *echo.Echo, addr string, logger *log.Logger) error {
	logger = logging.OrDiscard(logger)
	if addr == "" {
		addr = DefaultAddr
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err, ok := <-errc:
		if ok {
			return fmt.Errorf("serving on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
