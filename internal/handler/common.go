package handler // handler defines http handlers

import (
	"context"  // context bounds backend calls
	"net/http" // http defines status codes
	"strconv"  // strconv parses path ids
	"time"     // time sets request deadlines

	"github.com/labstack/echo/v4" // echo provides request context
)

// requestTimeout bounds every database round trip made by a handler.
const requestTimeout = 5 * time.Second

// Invalidator drops cached public content after an admin write.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context) {}

// parseID reads the :id path parameter and accepts positive integers only.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid ID"})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
}

func withTimeout(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}
