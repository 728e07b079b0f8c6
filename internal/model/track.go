package model

import "time"

// Track is a playable audio entry shown in the music section.  It maps to
// the `tracks` table; Duration is a display string such as "3:45".
type Track struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AudioSrc    string    `json:"audio_src"`
	Duration    string    `json:"duration"`
	CoverImage  *string   `json:"cover_image"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TrackPatch carries the fields of a partial update.  Nil means unchanged.
type TrackPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AudioSrc    *string `json:"audio_src"`
	Duration    *string `json:"duration"`
	CoverImage  *string `json:"cover_image"`
	OrderIndex  *int    `json:"order_index"`
	IsActive    *bool   `json:"is_active"`
}
