package model

import "time"

// SiteContentSetting is one scalar field of a named section, e.g.
// section "hero", key "tagline".  Array values are stored as JSON text.
type SiteContentSetting struct {
	ID        uint64    `json:"id"`
	Section   string    `json:"section"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReorderItem is one element of a bulk reorder request.  Services read only
// ID and OrderIndex; socials and nav links also rewrite the display fields
// that are present.  A nil field leaves its column untouched.
type ReorderItem struct {
	ID         uint64  `json:"id"`
	OrderIndex int     `json:"order_index"`
	Platform   *string `json:"platform,omitempty"`
	URL        *string `json:"url,omitempty"`
	Icon       *string `json:"icon,omitempty"`
	Label      *string `json:"label,omitempty"`
	Href       *string `json:"href,omitempty"`
}
