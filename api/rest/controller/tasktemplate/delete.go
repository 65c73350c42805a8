package tasktemplate

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/richcrm/richcrm/api/rest/service/tasktemplate"
)

func Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	if err := tasktemplate.Service(c.Request().Context()).Delete(id.String()); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusAccepted)
}
