package handler

// Create rules per table: the required fields and the column defaults a
// new row gets.  New rows are always active.

import (
	"go.uber.org/zap" // zap structured logging

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
	"github.com/iliyamo/musician-site/internal/utils" // utils holds token, password and video helpers
)

func newCollection[T, P any](name string, s CollectionStore[T, P], prepare func(*T) string, cache Invalidator, log *zap.Logger) *Collection[T, P] {
	if cache == nil {
		cache = noopInvalidator{}
	}
	return &Collection[T, P]{Name: name, Store: s, Prepare: prepare, Cache: cache, Log: log}
}

func NewTracksHandler(s CollectionStore[model.Track, model.TrackPatch], cache Invalidator, log *zap.Logger) *Collection[model.Track, model.TrackPatch] {
	return newCollection("tracks", s, prepareTrack, cache, log)
}

func NewGalleryHandler(s CollectionStore[model.GalleryImage, model.GalleryImagePatch], cache Invalidator, log *zap.Logger) *Collection[model.GalleryImage, model.GalleryImagePatch] {
	return newCollection("gallery", s, prepareGalleryImage, cache, log)
}

func NewServicesHandler(s CollectionStore[model.Service, model.ServicePatch], cache Invalidator, log *zap.Logger) *Collection[model.Service, model.ServicePatch] {
	return newCollection("services", s, prepareService, cache, log)
}

func NewSocialsHandler(s CollectionStore[model.SocialLink, model.SocialLinkPatch], cache Invalidator, log *zap.Logger) *Collection[model.SocialLink, model.SocialLinkPatch] {
	return newCollection("socials", s, prepareSocialLink, cache, log)
}

func NewNavLinksHandler(s CollectionStore[model.NavLink, model.NavLinkPatch], cache Invalidator, log *zap.Logger) *Collection[model.NavLink, model.NavLinkPatch] {
	return newCollection("nav-links", s, prepareNavLink, cache, log)
}

func NewEventsHandler(s CollectionStore[model.Event, model.EventPatch], cache Invalidator, log *zap.Logger) *Collection[model.Event, model.EventPatch] {
	h := newCollection("events", s, prepareEvent, cache, log)
	h.CheckPatch = checkEventPatch
	return h
}

func NewVideosHandler(s CollectionStore[model.Video, model.VideoPatch], cache Invalidator, log *zap.Logger) *Collection[model.Video, model.VideoPatch] {
	h := newCollection("videos", s, prepareVideo, cache, log)
	h.CheckPatch = checkVideoPatch
	return h
}

func prepareTrack(t *model.Track) string {
	if t.Title == "" || t.AudioSrc == "" {
		return "Title and audio_src are required"
	}
	if t.CoverImage != nil && *t.CoverImage == "" {
		t.CoverImage = nil
	}
	t.IsActive = true
	return ""
}

func prepareGalleryImage(g *model.GalleryImage) string {
	if g.Src == "" || g.Alt == "" {
		return "Src and alt are required"
	}
	g.IsActive = true
	return ""
}

func prepareService(s *model.Service) string {
	if s.Title == "" || s.Description == "" || s.Icon == "" {
		return "Title, description and icon are required"
	}
	s.IsActive = true
	return ""
}

func prepareSocialLink(l *model.SocialLink) string {
	if l.Platform == "" || l.URL == "" || l.Icon == "" {
		return "Platform, url and icon are required"
	}
	l.IsActive = true
	return ""
}

func prepareNavLink(l *model.NavLink) string {
	if l.Label == "" || l.Href == "" {
		return "Label and href are required"
	}
	l.IsActive = true
	return ""
}

func prepareEvent(e *model.Event) string {
	if e.Title == "" || e.Date == "" || e.Type == "" {
		return "Title, date and type are required"
	}
	if !model.ValidEventType(e.Type) {
		return "Type must be upcoming or past"
	}
	return ""
}

func checkEventPatch(p *model.EventPatch) string {
	if p.Type != nil && !model.ValidEventType(*p.Type) {
		return "Type must be upcoming or past"
	}
	return ""
}

// prepareVideo also accepts a bare pasted link in place of platform and
// video_id.
func prepareVideo(v *model.Video) string {
	if v.VideoID == "" && v.URL != "" {
		if ref, err := utils.ParseVideoURL(v.URL); err == nil {
			v.Platform, v.VideoID = ref.Platform, ref.VideoID
			if v.Thumbnail == nil && ref.Thumbnail != "" {
				thumb := ref.Thumbnail
				v.Thumbnail = &thumb
			}
		}
	}
	v.URL = ""
	if v.Title == "" || v.Platform == "" || v.VideoID == "" {
		return "Title, platform and video_id are required"
	}
	if !model.ValidPlatform(v.Platform) {
		return "Platform must be youtube or instagram"
	}
	if v.Thumbnail != nil && *v.Thumbnail == "" {
		v.Thumbnail = nil
	}
	v.IsActive = true
	return ""
}

func checkVideoPatch(p *model.VideoPatch) string {
	if p.Platform != nil && !model.ValidPlatform(*p.Platform) {
		return "Platform must be youtube or instagram"
	}
	return ""
}
