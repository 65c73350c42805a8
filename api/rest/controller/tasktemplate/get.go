package tasktemplate

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/richcrm/richcrm/api/rest/service/tasktemplate"
)

func Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	t, err := tasktemplate.Service(c.Request().Context()).Get(id.String())

	switch {
	case err != nil:
		return httpError(err)
	case t == nil:
		return echo.ErrNotFound
	default:
		return c.JSON(http.StatusOK, t)
	}
}
