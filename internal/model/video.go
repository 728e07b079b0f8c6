package model

import "time"

// Video platforms.
const (
	PlatformYouTube   = "youtube"
	PlatformInstagram = "instagram"
)

// Video is an embedded clip.  VideoID is the platform specific identifier
// extracted from the pasted URL.
type Video struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Platform    string    `json:"platform"`
	VideoID     string    `json:"video_id"`
	Thumbnail   *string   `json:"thumbnail"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	// URL is accepted on create only; when set and VideoID is empty the
	// platform, id and thumbnail are derived from it.
	URL string `json:"url,omitempty"`
}

type VideoPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Platform    *string `json:"platform"`
	VideoID     *string `json:"video_id"`
	Thumbnail   *string `json:"thumbnail"`
	OrderIndex  *int    `json:"order_index"`
	IsActive    *bool   `json:"is_active"`
}

// ValidPlatform reports whether p is a supported video platform.
func ValidPlatform(p string) bool { return p == PlatformYouTube || p == PlatformInstagram }
