package repository

import (
	"context"      // context carries request deadlines
	"database/sql" // sql provides the connection pool and transactions
	"errors"       // errors matches sentinel errors

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
)

const videoColumns = `id, title, description, platform, video_id, thumbnail, order_index, is_active, created_at`

// VideoRepo reads and writes videos.
type VideoRepo struct {
	db *sql.DB
}

func NewVideoRepo(db *sql.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

func scanVideo(s rowScanner) (model.Video, error) {
	var v model.Video
	err := s.Scan(&v.ID, &v.Title, &v.Description, &v.Platform, &v.VideoID, &v.Thumbnail, &v.OrderIndex, &v.IsActive, &v.CreatedAt)
	return v, err
}

func (r *VideoRepo) ListActive(ctx context.Context) ([]model.Video, error) {
	return queryAll(ctx, r.db, `SELECT `+videoColumns+` FROM videos WHERE is_active = TRUE ORDER BY order_index, id`, scanVideo)
}

func (r *VideoRepo) ListAll(ctx context.Context) ([]model.Video, error) {
	return queryAll(ctx, r.db, `SELECT `+videoColumns+` FROM videos ORDER BY order_index, id`, scanVideo)
}

func (r *VideoRepo) Get(ctx context.Context, id uint64) (*model.Video, error) {
	v, err := scanVideo(r.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepo) Create(ctx context.Context, v *model.Video) error {
	const q = `INSERT INTO videos (title, description, platform, video_id, thumbnail, order_index, is_active)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	id, err := insertID(ctx, r.db, q, v.Title, v.Description, v.Platform, v.VideoID, v.Thumbnail, v.OrderIndex, v.IsActive)
	if err != nil {
		return err
	}
	stored, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	*v = *stored
	return nil
}

func (r *VideoRepo) Update(ctx context.Context, id uint64, p model.VideoPatch) (*model.Video, error) {
	var a assignments
	set(&a, "title", p.Title)
	set(&a, "description", p.Description)
	set(&a, "platform", p.Platform)
	set(&a, "video_id", p.VideoID)
	set(&a, "thumbnail", p.Thumbnail)
	set(&a, "order_index", p.OrderIndex)
	set(&a, "is_active", p.IsActive)
	if err := a.exec(ctx, r.db, "videos", id, false); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *VideoRepo) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, "videos", id)
}
