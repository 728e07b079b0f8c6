package content

import (
	json "github.com/goccy/go-json"

	"github.com/iliyamo/musician-site/internal/model"
)

// snapshot holds the outcome of every collection read.  A failed read
// leaves its slice nil, which the merge treats exactly like an empty one.
type snapshot struct {
	settings map[string]map[string]string
	tracks   []model.Track
	gallery  []model.GalleryImage
	services []model.Service
	socials  []model.SocialLink
	navLinks []model.NavLink
	events   []model.Event
	videos   []model.Video
}

// merge overlays the snapshot onto the bundled defaults.  Scalar fields
// resolve key-value first, then default.  Collections are replaced whole
// when at least one row exists; the gallery instead appends rows after the
// bundled images.
func merge(s snapshot) SiteContent {
	d := Defaults()
	hero := s.settings["hero"]
	about := s.settings["about"]
	contact := s.settings["contact"]
	footer := s.settings["footer"]

	out := SiteContent{
		Hero: Hero{
			Name:    pick(hero, "name", d.Hero.Name),
			Tagline: pick(hero, "tagline", d.Hero.Tagline),
			CTA: CTA{
				Listen: pick(hero, "cta_listen", d.Hero.CTA.Listen),
				Book:   pick(hero, "cta_book", d.Hero.CTA.Book),
			},
			BackgroundImage: pick(hero, "background_image", d.Hero.BackgroundImage),
		},
		About: About{
			Title:        pick(about, "title", d.About.Title),
			Badge:        pick(about, "badge", d.About.Badge),
			Bio:          pick(about, "bio", d.About.Bio),
			Instruments:  pickList(about, "instruments", d.About.Instruments),
			Genres:       pickList(about, "genres", d.About.Genres),
			ProfileImage: pick(about, "profile_image", d.About.ProfileImage),
		},
		Music: MusicSection{
			Title:    pick(s.settings["music"], "title", d.Music.Title),
			Subtitle: pick(s.settings["music"], "subtitle", d.Music.Subtitle),
			Tracks:   resolveCollection(s.tracks, d.Music.Tracks, trackFromRow),
		},
		Gallery: GallerySection{
			Title:    pick(s.settings["gallery"], "title", d.Gallery.Title),
			Subtitle: pick(s.settings["gallery"], "subtitle", d.Gallery.Subtitle),
			Images:   append(d.Gallery.Images, mapRows(s.gallery, imageFromRow)...),
		},
		Videos: VideoSection{
			Title:    pick(s.settings["videos"], "title", d.Videos.Title),
			Subtitle: pick(s.settings["videos"], "subtitle", d.Videos.Subtitle),
			Videos:   resolveCollection(s.videos, d.Videos.Videos, videoFromRow),
		},
		Services: ServiceSection{
			Title:    pick(s.settings["services"], "title", d.Services.Title),
			Subtitle: pick(s.settings["services"], "subtitle", d.Services.Subtitle),
			Items:    resolveCollection(s.services, d.Services.Items, serviceFromRow),
		},
		Events: EventSection{
			Title:    pick(s.settings["events"], "title", d.Events.Title),
			Subtitle: pick(s.settings["events"], "subtitle", d.Events.Subtitle),
		},
		Contact: ContactSection{
			Title:    pick(contact, "title", d.Contact.Title),
			Subtitle: pick(contact, "subtitle", d.Contact.Subtitle),
			Message:  pick(contact, "message", d.Contact.Message),
			Email:    pick(contact, "email", d.Contact.Email),
			Socials:  resolveCollection(s.socials, d.Contact.Socials, socialFromRow),
		},
		Nav: NavSection{
			Logo:  pick(s.settings["nav"], "logo_text", d.Nav.Logo),
			Links: resolveCollection(s.navLinks, d.Nav.Links, navLinkFromRow),
		},
		Footer: Footer{
			Copyright: pick(footer, "copyright", d.Footer.Copyright),
			Tagline:   pick(footer, "tagline", d.Footer.Tagline),
		},
	}
	out.Events.Upcoming, out.Events.Past = splitEvents(s.events, d.Events.Upcoming, d.Events.Past)
	return out
}

// resolveCollection returns the converted rows, or fallback when there
// are none.  Rows and defaults are never mixed.
func resolveCollection[R, T any](rows []R, fallback []T, conv func(R) T) []T {
	if len(rows) == 0 {
		return fallback
	}
	return mapRows(rows, conv)
}

func mapRows[R, T any](rows []R, conv func(R) T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, conv(r))
	}
	return out
}

// splitEvents partitions events by type.  Both lists fall back together,
// and only when there are no events at all: a site with only past events
// shows an empty upcoming list, not the defaults.
func splitEvents(rows []model.Event, upcomingDef, pastDef []Event) (upcoming, past []Event) {
	if len(rows) == 0 {
		return upcomingDef, pastDef
	}
	upcoming, past = []Event{}, []Event{}
	for _, r := range rows {
		switch r.Type {
		case model.EventUpcoming:
			upcoming = append(upcoming, eventFromRow(r))
		case model.EventPast:
			past = append(past, eventFromRow(r))
		}
	}
	return upcoming, past
}

// pick returns section[key] unless it is missing or blank.
func pick(section map[string]string, key, def string) string {
	if v := section[key]; v != "" {
		return v
	}
	return def
}

// pickList decodes a JSON array of strings.  Anything else (missing,
// malformed, not an array, null) yields def.
func pickList(section map[string]string, key string, def []string) []string {
	raw := section[key]
	if raw == "" {
		return def
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return def
	}
	return out
}

func trackFromRow(t model.Track) Track {
	out := Track{
		ID:          int64(t.ID),
		Title:       t.Title,
		Description: t.Description,
		AudioSrc:    t.AudioSrc,
		Duration:    t.Duration,
	}
	if t.CoverImage != nil {
		out.CoverImage = *t.CoverImage
	}
	return out
}

func imageFromRow(g model.GalleryImage) Image {
	return Image{ID: int64(g.ID), Src: g.Src, Alt: g.Alt, Description: g.Description}
}

func videoFromRow(v model.Video) Video {
	out := Video{
		ID:          int64(v.ID),
		Title:       v.Title,
		Description: v.Description,
		Platform:    v.Platform,
		VideoID:     v.VideoID,
	}
	if v.Thumbnail != nil {
		out.Thumbnail = *v.Thumbnail
	}
	return out
}

func serviceFromRow(s model.Service) Service {
	return Service{ID: int64(s.ID), Title: s.Title, Description: s.Description, Icon: s.Icon}
}

func socialFromRow(s model.SocialLink) Social {
	return Social{Name: s.Platform, URL: s.URL, Icon: s.Icon}
}

func navLinkFromRow(l model.NavLink) NavLink {
	return NavLink{Label: l.Label, Href: l.Href}
}

func eventFromRow(e model.Event) Event {
	return Event{
		ID:          int64(e.ID),
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Type:        e.Type,
	}
}
