package utils

import (
	"errors"
	"regexp"
)

// ErrUnsupportedVideoURL is returned for links that are neither YouTube
// nor Instagram.
var ErrUnsupportedVideoURL = errors.New("unsupported video url")

var (
	youTubePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	}
	instagramPattern = regexp.MustCompile(`instagram\.com/(?:p|reel|tv)/([a-zA-Z0-9_-]+)`)
)

// VideoRef identifies a video on its platform.
type VideoRef struct {
	Platform  string `json:"platform"`
	VideoID   string `json:"video_id"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// ParseVideoURL extracts the platform and id from a pasted link.  YouTube
// links also get the medium-quality thumbnail URL; Instagram exposes none.
func ParseVideoURL(raw string) (VideoRef, error) {
	for _, re := range youTubePatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			return VideoRef{Platform: "youtube", VideoID: m[1], Thumbnail: YouTubeThumbnail(m[1])}, nil
		}
	}
	if m := instagramPattern.FindStringSubmatch(raw); m != nil {
		return VideoRef{Platform: "instagram", VideoID: m[1]}, nil
	}
	return VideoRef{}, ErrUnsupportedVideoURL
}

// YouTubeThumbnail returns the mqdefault thumbnail of a YouTube video.
func YouTubeThumbnail(id string) string {
	return "https://img.youtube.com/vi/" + id + "/mqdefault.jpg"
}
