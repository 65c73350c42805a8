package template

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/richcrm/richcrm/api/rest/service/template"
)

func Delete(c echo.Context) error {
	title := c.Param("title")
	if title == "" {
		return echo.ErrBadRequest
	}

	if err := template.Service(c.Request().Context()).Delete(title); err != nil {
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.NoContent(http.StatusAccepted)
}
