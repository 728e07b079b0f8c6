package model

import "time"

// BookingStatusNew is the only status the site ever writes.
const BookingStatusNew = "new"

// Booking is a submission of the public booking form.  Rows are never
// updated after insert.
type Booking struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	EventType string    `json:"event_type"`
	EventDate string    `json:"event_date"`
	Venue     string    `json:"venue"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
