package repository

import (
	"context"      // context carries request deadlines into every query
	"database/sql" // sql provides the connection pool
	"errors"       // errors matches sql.ErrNoRows

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
)

const trackColumns = `id, title, description, audio_src, duration, cover_image, order_index, is_active, created_at, updated_at`

// TrackRepo encapsulates all queries on the tracks table.
type TrackRepo struct {
	db *sql.DB // db is the underlying connection pool
}

// NewTrackRepo constructs a TrackRepo with the provided DB handle.
func NewTrackRepo(db *sql.DB) *TrackRepo {
	return &TrackRepo{db: db}
}

func scanTrack(s rowScanner) (model.Track, error) {
	var t model.Track
	err := s.Scan(&t.ID, &t.Title, &t.Description, &t.AudioSrc, &t.Duration, &t.CoverImage,
		&t.OrderIndex, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// ListActive returns the public view: active rows by display order.
func (r *TrackRepo) ListActive(ctx context.Context) ([]model.Track, error) {
	return queryAll(ctx, r.db, `SELECT `+trackColumns+` FROM tracks WHERE is_active = TRUE ORDER BY order_index, id`, scanTrack)
}

// ListAll returns every row, inactive ones included, for the admin panel.
func (r *TrackRepo) ListAll(ctx context.Context) ([]model.Track, error) {
	return queryAll(ctx, r.db, `SELECT `+trackColumns+` FROM tracks ORDER BY order_index, id`, scanTrack)
}

// Get fetches one track or ErrNotFound.
func (r *TrackRepo) Get(ctx context.Context, id uint64) (*model.Track, error) {
	t, err := scanTrack(r.db.QueryRowContext(ctx, `SELECT `+trackColumns+` FROM tracks WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a track and refreshes t with the stored row so callers
// see the generated id and timestamps.
func (r *TrackRepo) Create(ctx context.Context, t *model.Track) error {
	const q = `INSERT INTO tracks (title, description, audio_src, duration, cover_image, order_index, is_active)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	id, err := insertID(ctx, r.db, q, t.Title, t.Description, t.AudioSrc, t.Duration, t.CoverImage, t.OrderIndex, t.IsActive)
	if err != nil {
		return err
	}
	stored, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	*t = *stored
	return nil
}

// Update writes the non-nil fields of p and returns the updated row.
func (r *TrackRepo) Update(ctx context.Context, id uint64, p model.TrackPatch) (*model.Track, error) {
	var a assignments
	set(&a, "title", p.Title)
	set(&a, "description", p.Description)
	set(&a, "audio_src", p.AudioSrc)
	set(&a, "duration", p.Duration)
	set(&a, "cover_image", p.CoverImage)
	set(&a, "order_index", p.OrderIndex)
	set(&a, "is_active", p.IsActive)
	if err := a.exec(ctx, r.db, "tracks", id, true); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes the track unconditionally.
func (r *TrackRepo) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, "tracks", id)
}
