// Package respond maps error kinds to HTTP statuses in one place, the way
// a single error handler would.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PUprojects/shareit/util/apperr"
)

func Error(c echo.Context, err error) error {
	switch apperr.Code(err) {
	case apperr.NotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case apperr.AlreadyExists:
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case apperr.AccessDenied:
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case apperr.InvalidDate, apperr.ItemUnavailable, apperr.InvalidRequest:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
