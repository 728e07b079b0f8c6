package model

import "time"

// Event types.  The public site groups events by this field.
const (
	EventUpcoming = "upcoming"
	EventPast     = "past"
)

// Event is a row of `events`.  Date and Time are free text shown as-is;
// they are never parsed.  Events have no is_active flag and no updated_at.
type Event struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Type        *string `json:"type"`
}

// ValidEventType reports whether t is upcoming or past.
func ValidEventType(t string) bool { return t == EventUpcoming || t == EventPast }
