package router // package router defines how HTTP routes are registered for the site

import (
	"github.com/labstack/echo/v4"                             // import the Echo web framework to handle routing
	"github.com/prometheus/client_golang/prometheus/promhttp" // promhttp exposes the default registry

	"github.com/iliyamo/musician-site/internal/handler" // import the handlers that implement the endpoints
)

// RegisterRoutes registers the operational endpoints: the liveness check
// and the Prometheus scrape target.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterPublic registers the visitor-facing pages and the content API.
// cache wraps only the content JSON; the rendered pages resolve content on
// every request.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	e.GET("/", p.Home)
	e.GET("/book", p.Book)
	e.GET("/admin", p.Admin)
	e.GET("/api/content", p.ContentJSON, cache)
}

// RegisterAuth registers the login endpoint behind the public token bucket.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, bucket echo.MiddlewareFunc) {
	e.POST("/api/auth", a.Login, bucket)
}

// RegisterBooking registers the booking form endpoint.  GET on the same
// path is the admin listing and needs a token.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, bucket, adminAuth echo.MiddlewareFunc) {
	e.POST("/api/send-booking", b.Submit, bucket)
	e.GET("/api/send-booking", b.List, adminAuth)
}
