package handler

import (
	"net/http" // http defines status codes

	"github.com/labstack/echo/v4" // echo is the web framework

	"github.com/iliyamo/musician-site/internal/utils" // utils holds token, password and video helpers
)

// ParseVideo turns a pasted YouTube or Instagram link into the fields of a
// video row.
func ParseVideo(c echo.Context) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	ref, err := utils.ParseVideoURL(req.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unsupported video URL. Use a YouTube or Instagram link"})
	}
	return c.JSON(http.StatusOK, ref)
}
