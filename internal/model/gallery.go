package model

import "time"

// GalleryImage is a row of `gallery_images`.
type GalleryImage struct {
	ID          uint64    `json:"id"`
	Src         string    `json:"src"`
	Alt         string    `json:"alt"`
	Description string    `json:"description"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type GalleryImagePatch struct {
	Src         *string `json:"src"`
	Alt         *string `json:"alt"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
	IsActive    *bool   `json:"is_active"`
}
