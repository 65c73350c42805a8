package template

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/richcrm/richcrm/api/rest/service/template"
)

func Post(c echo.Context) error {
	var req template.PutRequest

	if err := c.Bind(&req); err != nil {
		return echo.ErrBadRequest.SetInternal(err)
	}

	t, err := template.Service(c.Request().Context()).Put(&req)
	if err != nil {
		if errors.Is(err, template.ErrMissingTitle) {
			return echo.ErrBadRequest.SetInternal(err)
		}
		return echo.ErrInternalServerError.SetInternal(err)
	}

	return c.JSON(http.StatusCreated, t)
}
