package tasktemplate

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/richcrm/richcrm/api/rest/service/tasktemplate"
)

type seedRequest struct {
	CreatorID string `json:"creatorId"`
}

// Seed builds the default task chain for every stage of the given
// creator.
func Seed(c echo.Context) error {
	var req seedRequest

	if err := c.Bind(&req); err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	if err := tasktemplate.Service(c.Request().Context()).SeedDefaults(req.CreatorID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusCreated)
}
