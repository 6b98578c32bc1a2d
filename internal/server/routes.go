// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerRoutes(e *echo.Echo, h *handlers) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api")

	// Dataset routes
	api.GET("/summary", h.summary)
	api.GET("/publications", h.publications)
	api.POST("/reload", h.reload)

	// Graph routes
	api.GET("/network", h.network)
	api.GET("/sankey", h.sankey)

	// Question routes
	api.POST("/query", h.query)
	api.POST("/chat", h.chat)
}
