package repository

import (
	"context"      // context carries request deadlines
	"database/sql" // sql provides the connection pool and transactions
	"errors"       // errors matches sentinel errors

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
)

const eventColumns = "id, title, description, date, time, location, type, created_at"

// EventRepo reads and writes events.  Events have no display order and
// no active flag; both views list newest first.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

func scanEvent(s rowScanner) (model.Event, error) {
	var e model.Event
	err := s.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.Type, &e.CreatedAt)
	return e, err
}

func (r *EventRepo) ListAll(ctx context.Context) ([]model.Event, error) {
	return queryAll(ctx, r.db, "SELECT "+eventColumns+" FROM events ORDER BY created_at DESC, id DESC", scanEvent)
}

func (r *EventRepo) Get(ctx context.Context, id uint64) (*model.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM events WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	const q = "INSERT INTO events (title, description, date, time, location, type) VALUES (?, ?, ?, ?, ?, ?)"
	id, err := insertID(ctx, r.db, q, e.Title, e.Description, e.Date, e.Time, e.Location, e.Type)
	if err != nil {
		return err
	}
	stored, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	*e = *stored
	return nil
}

func (r *EventRepo) Update(ctx context.Context, id uint64, p model.EventPatch) (*model.Event, error) {
	var a assignments
	set(&a, "title", p.Title)
	set(&a, "description", p.Description)
	set(&a, "date", p.Date)
	set(&a, "time", p.Time)
	set(&a, "location", p.Location)
	set(&a, "type", p.Type)
	if err := a.exec(ctx, r.db, "events", id, false); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, "events", id)
}
