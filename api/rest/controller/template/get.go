package template

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/richcrm/richcrm/api/rest/service/template"
)

func Get(c echo.Context) error {
	title := c.Param("title")
	if title == "" {
		return echo.ErrBadRequest
	}

	t, err := template.Service(c.Request().Context()).Get(title)

	switch {
	case err != nil:
		return echo.ErrInternalServerError.SetInternal(err)
	case t == nil:
		return echo.ErrNotFound
	default:
		return c.JSON(http.StatusOK, t)
	}
}
