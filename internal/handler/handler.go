package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "gymcore/internal/errors"
)

// errorJSON translates a domain error into the standard {error, code} body.
func errorJSON(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
