package router

import (
	"github.com/labstack/echo/v4"                   // echo is the web framework
	echomw "github.com/labstack/echo/v4/middleware" // echo middleware for recover and body limits

	"github.com/iliyamo/musician-site/internal/handler" // handler implements the endpoints
	"github.com/iliyamo/musician-site/internal/model"   // model defines the row types
)

// Admin collects every handler mounted behind the admin token.
type Admin struct {
	Tracks   *handler.Collection[model.Track, model.TrackPatch]
	Gallery  *handler.Collection[model.GalleryImage, model.GalleryImagePatch]
	Services *handler.Collection[model.Service, model.ServicePatch]
	Socials  *handler.Collection[model.SocialLink, model.SocialLinkPatch]
	NavLinks *handler.Collection[model.NavLink, model.NavLinkPatch]
	Events   *handler.Collection[model.Event, model.EventPatch]
	Videos   *handler.Collection[model.Video, model.VideoPatch]

	ServicesOrder *handler.ReorderHandler
	SocialsOrder  *handler.ReorderHandler
	NavLinksOrder *handler.ReorderHandler

	Content  *handler.ContentHandler
	Bookings *handler.BookingHandler
	Upload   *handler.UploadHandler
	Setup    *handler.SetupHandler

	// UploadLimit caps multipart bodies, e.g. "60M".
	UploadLimit string
}

// RegisterAdmin mounts the admin API.  adminAuth runs before every route.
func RegisterAdmin(e *echo.Echo, a Admin, adminAuth echo.MiddlewareFunc) {
	g := e.Group("/api/admin", adminAuth)

	g.POST("/videos/parse", handler.ParseVideo)

	a.Tracks.Register(g, "/tracks")
	a.Gallery.Register(g, "/gallery")
	a.Services.Register(g, "/services")
	a.Socials.Register(g, "/socials")
	a.NavLinks.Register(g, "/nav-links")
	a.Events.Register(g, "/events")
	a.Videos.Register(g, "/videos")

	g.PUT("/services", a.ServicesOrder.Reorder)
	g.PUT("/socials", a.SocialsOrder.Reorder)
	g.PUT("/nav-links", a.NavLinksOrder.Reorder)

	g.GET("/content", a.Content.Get)
	g.PUT("/content", a.Content.Put)
	g.GET("/bookings", a.Bookings.List)

	limit := a.UploadLimit
	if limit == "" {
		limit = "60M"
	}
	g.POST("/upload", a.Upload.Upload, echomw.BodyLimit(limit))

	e.GET("/api/setup", a.Setup.Check, adminAuth)
	e.POST("/api/setup", a.Setup.Apply, adminAuth)
}
