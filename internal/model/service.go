package model

import "time"

// Service icons understood by the front end.
const (
	IconMusic    = "music"
	IconSliders  = "sliders"
	IconWaveform = "waveform"
)

// Service is an offering listed in the services section.
type Service struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServicePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	OrderIndex  *int    `json:"order_index"`
	IsActive    *bool   `json:"is_active"`
}
