package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// parseID parses a path-supplied id; only positive integers are valid.
func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{
		"success": false,
		"error":   msg,
	})
}
