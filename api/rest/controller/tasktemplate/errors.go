package tasktemplate

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/richcrm/richcrm/api/rest/service/tasktemplate"
)

// httpError maps service failures onto HTTP errors: validation and
// cycle rejections are the caller's fault, everything else is a
// store failure.
func httpError(err error) error {
	switch {
	case errors.Is(err, tasktemplate.ErrMissingField),
		errors.Is(err, tasktemplate.ErrInvalidStage),
		errors.Is(err, tasktemplate.ErrInvalidTaskType),
		errors.Is(err, tasktemplate.ErrCycleDetected):
		return echo.ErrBadRequest.SetInternal(err)
	default:
		return echo.ErrInternalServerError.SetInternal(err)
	}
}
