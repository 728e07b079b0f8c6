package repository

import (
	"context"      // context carries request deadlines
	"database/sql" // sql provides the connection pool and transactions

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
)

// Repos bundles one repository per table over a shared pool.
type Repos struct {
	Content  *SiteContentRepo
	Tracks   *TrackRepo
	Gallery  *GalleryRepo
	Services *ServiceRepo
	Socials  *SocialRepo
	NavLinks *NavLinkRepo
	Events   *EventRepo
	Videos   *VideoRepo
	Bookings *BookingRepo
}

func NewRepos(db *sql.DB) *Repos {
	return &Repos{
		Content:  NewSiteContentRepo(db),
		Tracks:   NewTrackRepo(db),
		Gallery:  NewGalleryRepo(db),
		Services: NewServiceRepo(db),
		Socials:  NewSocialRepo(db),
		NavLinks: NewNavLinkRepo(db),
		Events:   NewEventRepo(db),
		Videos:   NewVideoRepo(db),
		Bookings: NewBookingRepo(db),
	}
}

// The methods below are the public, read-only view used when rendering
// the site.

func (r *Repos) SettingRows(ctx context.Context) ([]model.SiteContentSetting, error) {
	return r.Content.ListAll(ctx)
}

func (r *Repos) ActiveTracks(ctx context.Context) ([]model.Track, error) {
	return r.Tracks.ListActive(ctx)
}

func (r *Repos) ActiveGallery(ctx context.Context) ([]model.GalleryImage, error) {
	return r.Gallery.ListActive(ctx)
}

func (r *Repos) ActiveServices(ctx context.Context) ([]model.Service, error) {
	return r.Services.ListActive(ctx)
}

func (r *Repos) ActiveSocials(ctx context.Context) ([]model.SocialLink, error) {
	return r.Socials.ListActive(ctx)
}

func (r *Repos) ActiveNavLinks(ctx context.Context) ([]model.NavLink, error) {
	return r.NavLinks.ListActive(ctx)
}

func (r *Repos) AllEvents(ctx context.Context) ([]model.Event, error) {
	return r.Events.ListAll(ctx)
}

func (r *Repos) ActiveVideos(ctx context.Context) ([]model.Video, error) {
	return r.Videos.ListActive(ctx)
}
