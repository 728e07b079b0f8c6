package model

import "time"

// SocialLink is a profile link shown in the contact section.  Platform is
// the display name ("Instagram"), Icon the front-end icon key.
type SocialLink struct {
	ID         uint64    `json:"id"`
	Platform   string    `json:"platform"`
	URL        string    `json:"url"`
	Icon       string    `json:"icon"`
	OrderIndex int       `json:"order_index"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type SocialLinkPatch struct {
	Platform   *string `json:"platform"`
	URL        *string `json:"url"`
	Icon       *string `json:"icon"`
	OrderIndex *int    `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
}

// NavLink is an entry of the top navigation bar.
type NavLink struct {
	ID         uint64    `json:"id"`
	Label      string    `json:"label"`
	Href       string    `json:"href"`
	OrderIndex int       `json:"order_index"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type NavLinkPatch struct {
	Label      *string `json:"label"`
	Href       *string `json:"href"`
	OrderIndex *int    `json:"order_index"`
	IsActive   *bool   `json:"is_active"`
}
