package tasktemplate

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/richcrm/richcrm/api/rest/service/tasktemplate"
)

func Post(c echo.Context) error {
	var req tasktemplate.CreateOrUpdateRequest

	if err := c.Bind(&req); err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	t, err := tasktemplate.Service(c.Request().Context()).CreateOrUpdate(&req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, t)
}
