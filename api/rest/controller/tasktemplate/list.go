package tasktemplate

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/richcrm/richcrm/api/rest/service/tasktemplate"
	"github.com/richcrm/richcrm/internal/models"
)

// List returns the creator's task templates for a stage in chain
// order.
func List(c echo.Context) error {
	stage, err := strconv.Atoi(c.QueryParam("stage"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	creatorID := c.QueryParam("creatorId")

	templates, err := tasktemplate.
		Service(c.Request().Context()).
		OrderedByStage(models.Stage(stage), creatorID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, templates)
}
