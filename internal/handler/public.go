package handler

import (
	"context"  // context carries request deadlines
	"net/http" // http defines status codes

	"github.com/labstack/echo/v4" // echo is the web framework

	"github.com/iliyamo/musician-site/internal/content" // content resolves the public site data
)

// ContentResolver produces the merged site content.  It never fails.
type ContentResolver interface {
	Resolve(ctx context.Context) content.SiteContent
}

// PublicHandler renders the visitor-facing pages and the content API.
type PublicHandler struct {
	Content ContentResolver
}

func NewPublicHandler(r ContentResolver) *PublicHandler {
	return &PublicHandler{Content: r}
}

// ContentJSON serves the same data the home page is rendered from.
func (h *PublicHandler) ContentJSON(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Content.Resolve(c.Request().Context()))
}

func (h *PublicHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", h.Content.Resolve(c.Request().Context()))
}

func (h *PublicHandler) Book(c echo.Context) error {
	return c.Render(http.StatusOK, "book.html", h.Content.Resolve(c.Request().Context()))
}

// Admin serves the static shell; all admin data is fetched by the page
// with its bearer token.
func (h *PublicHandler) Admin(c echo.Context) error {
	return c.Render(http.StatusOK, "admin.html", nil)
}
