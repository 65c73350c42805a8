package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/richcrm/richcrm/api/rest/bind"
	"github.com/richcrm/richcrm/pkg/env"
)

var e *echo.Echo

// Start launches the richcrm API.
func Start() error {
	e = echo.New()
	e.HideBanner = true
	e.HidePort = true

	// health
	e.GET("/health", Health)

	// metrics
	prometheus.NewPrometheus("richcrm", nil).Use(e)

	// REST
	bind.All(e.Group("/v1"))

	return e.Start(fmt.Sprintf(":%v", env.Variables().Port))
}

// Shutdown stops the API server gracefully.
func Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.Shutdown(ctx)
}
