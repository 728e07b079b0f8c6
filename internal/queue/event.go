// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingReceivedEvent is published after a booking form submission has
// been accepted.  It carries the form fields so consumers never need to
// query the database.  BookingID is zero when persisting the row failed.
type BookingReceivedEvent struct {
	BookingID  uint64 `json:"booking_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	EventType  string `json:"event_type"`
	EventDate  string `json:"event_date"`
	Venue      string `json:"venue"`
	ReceivedAt string `json:"received_at"`
}
