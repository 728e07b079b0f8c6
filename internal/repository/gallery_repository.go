package repository

import (
	"context"      // context carries request deadlines
	"database/sql" // sql provides the connection pool and transactions
	"errors"       // errors matches sentinel errors

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
)

const galleryColumns = `id, src, alt, description, order_index, is_active, created_at`

// GalleryRepo reads and writes gallery_images.
type GalleryRepo struct {
	db *sql.DB
}

func NewGalleryRepo(db *sql.DB) *GalleryRepo {
	return &GalleryRepo{db: db}
}

func scanGalleryImage(s rowScanner) (model.GalleryImage, error) {
	var g model.GalleryImage
	err := s.Scan(&g.ID, &g.Src, &g.Alt, &g.Description, &g.OrderIndex, &g.IsActive, &g.CreatedAt)
	return g, err
}

func (r *GalleryRepo) ListActive(ctx context.Context) ([]model.GalleryImage, error) {
	return queryAll(ctx, r.db, `SELECT `+galleryColumns+` FROM gallery_images WHERE is_active = TRUE ORDER BY order_index, id`, scanGalleryImage)
}

func (r *GalleryRepo) ListAll(ctx context.Context) ([]model.GalleryImage, error) {
	return queryAll(ctx, r.db, `SELECT `+galleryColumns+` FROM gallery_images ORDER BY order_index, id`, scanGalleryImage)
}

func (r *GalleryRepo) Get(ctx context.Context, id uint64) (*model.GalleryImage, error) {
	g, err := scanGalleryImage(r.db.QueryRowContext(ctx, `SELECT `+galleryColumns+` FROM gallery_images WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepo) Create(ctx context.Context, g *model.GalleryImage) error {
	const q = `INSERT INTO gallery_images (src, alt, description, order_index, is_active) VALUES (?, ?, ?, ?, ?)`
	id, err := insertID(ctx, r.db, q, g.Src, g.Alt, g.Description, g.OrderIndex, g.IsActive)
	if err != nil {
		return err
	}
	stored, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	*g = *stored
	return nil
}

// Update has no updated_at to stamp; gallery rows only record creation.
func (r *GalleryRepo) Update(ctx context.Context, id uint64, p model.GalleryImagePatch) (*model.GalleryImage, error) {
	var a assignments
	set(&a, "src", p.Src)
	set(&a, "alt", p.Alt)
	set(&a, "description", p.Description)
	set(&a, "order_index", p.OrderIndex)
	set(&a, "is_active", p.IsActive)
	if err := a.exec(ctx, r.db, "gallery_images", id, false); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *GalleryRepo) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, "gallery_images", id)
}
