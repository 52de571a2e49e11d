// Package actor resolves the calling user from the X-Sharer-User-Id header.
// The gateway is trusted to have validated the caller; the server only
// parses the id.
package actor

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

const Header = "X-Sharer-User-Id"

func ID(c echo.Context) (int64, error) {
	raw := c.Request().Header.Get(Header)
	if raw == "" {
		return 0, errors.New("missing " + Header + " header")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + Header + " header")
	}
	return id, nil
}
