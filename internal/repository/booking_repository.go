package repository

import (
	"context"      // context carries request deadlines
	"database/sql" // sql provides the connection pool and transactions

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
)

// BookingRepo stores booking form submissions.  There is no update path:
// a booking keeps the status it was inserted with.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// Create inserts b and sets its id.  An empty status becomes "new".
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	if b.Status == "" {
		b.Status = model.BookingStatusNew
	}
	const q = `INSERT INTO bookings (name, email, phone, event_type, event_date, venue, message, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	id, err := insertID(ctx, r.db, q, b.Name, b.Email, b.Phone, b.EventType, b.EventDate, b.Venue, b.Message, b.Status)
	if err != nil {
		return err
	}
	b.ID = id
	return nil
}

// ListAll returns every booking, newest first.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.Booking, error) {
	const q = `SELECT id, name, email, phone, event_type, event_date, venue, message, status, created_at
	           FROM bookings ORDER BY created_at DESC, id DESC`
	return queryAll(ctx, r.db, q, func(s rowScanner) (model.Booking, error) {
		var b model.Booking
		err := s.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.EventType, &b.EventDate, &b.Venue, &b.Message, &b.Status, &b.CreatedAt)
		return b, err
	})
}
