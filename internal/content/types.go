// Package content builds the composite object the public site renders:
// persisted overrides from the database merged over compiled-in defaults.
package content

// SiteContent is the fully resolved content of the public site.  Every
// section is always present and every slice is non-nil.
type SiteContent struct {
	Hero     Hero           `json:"hero"`
	About    About          `json:"about"`
	Music    MusicSection   `json:"music"`
	Gallery  GallerySection `json:"gallery"`
	Videos   VideoSection   `json:"videos"`
	Services ServiceSection `json:"services"`
	Events   EventSection   `json:"events"`
	Contact  ContactSection `json:"contact"`
	Nav      NavSection     `json:"nav"`
	Footer   Footer         `json:"footer"`
}

type Hero struct {
	Name            string `json:"name"`
	Tagline         string `json:"tagline"`
	CTA             CTA    `json:"cta"`
	BackgroundImage string `json:"backgroundImage"`
}

type CTA struct {
	Listen string `json:"listen"`
	Book   string `json:"book"`
}

type About struct {
	Title        string   `json:"title"`
	Badge        string   `json:"badge"`
	Bio          string   `json:"bio"`
	Instruments  []string `json:"instruments"`
	Genres       []string `json:"genres"`
	ProfileImage string   `json:"profileImage"`
}

type MusicSection struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Tracks   []Track `json:"tracks"`
}

type Track struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AudioSrc    string `json:"audioSrc"`
	Duration    string `json:"duration"`
	CoverImage  string `json:"coverImage,omitempty"`
}

type GallerySection struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Images   []Image `json:"images"`
}

// Image ids are negative for bundled images and positive for rows.
type Image struct {
	ID          int64  `json:"id"`
	Src         string `json:"src"`
	Alt         string `json:"alt"`
	Description string `json:"description"`
}

type VideoSection struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Videos   []Video `json:"videos"`
}

type Video struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Platform    string `json:"platform"`
	VideoID     string `json:"video_id"`
	Thumbnail   string `json:"thumbnail"`
}

type ServiceSection struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Items    []Service `json:"items"`
}

type Service struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type EventSection struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Upcoming []Event `json:"upcomingEvents"`
	Past     []Event `json:"pastEvents"`
}

type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Type        string `json:"type"`
}

type ContactSection struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Message  string   `json:"message"`
	Email    string   `json:"email"`
	Socials  []Social `json:"socials"`
}

type Social struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

type NavSection struct {
	Logo  string    `json:"logo"`
	Links []NavLink `json:"links"`
}

type NavLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Footer struct {
	Copyright string `json:"copyright"`
	Tagline   string `json:"tagline"`
}
