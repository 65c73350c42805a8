package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/richcrm/richcrm/db"
	"github.com/richcrm/richcrm/db/store"
	"github.com/richcrm/richcrm/internal/models"
	"github.com/richcrm/richcrm/pkg/env"
)

var startedAt time.Time

func init() {
	startedAt = time.Now()
}

// HealthResponse defines the data the Health
// REST endpoint returns.
type HealthResponse struct {
	Status Status        `json:"status"`
	Store  StoreHealth   `json:"store"`
	Uptime time.Duration `json:"uptime"`
}

// StoreHealth reports the configured item-store backend and
// whether it answered a read.
type StoreHealth struct {
	Backend string `json:"backend"`
	Status  Status `json:"status"`
}

// Health reports whether the service is healthy. The item store
// is probed with a read of a key that is never written; a
// not-found answer still proves the store is reachable.
func Health(c echo.Context) error {
	resp := HealthResponse{
		Status: Healthy,
		Store: StoreHealth{
			Backend: env.Variables().StoreBackend,
			Status:  Healthy,
		},
		Uptime: time.Since(startedAt),
	}

	var probe models.TaskTemplate
	err := db.Connection().Get(
		c.Request().Context(),
		models.TaskTemplateTable,
		map[string]interface{}{"TTID": "00000000-0000-0000-0000-000000000000"},
		&probe,
	)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		resp.Status = Degraded
		resp.Store.Status = Unreachable
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	return c.JSON(http.StatusOK, resp)
}

// Status enumerates the health statuses of the service and its
// dependencies.
type Status string

const (
	// Healthy implies the service is having no major issues.
	Healthy Status = "healthy"
	// Degraded implies a dependency is failing.
	Degraded Status = "degraded"
	// Unreachable implies the dependency did not answer.
	Unreachable Status = "unreachable"
)
