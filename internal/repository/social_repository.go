package repository

import (
	"context"      // context carries request deadlines
	"database/sql" // sql provides the connection pool and transactions
	"errors"       // errors matches sentinel errors

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
)

const socialColumns = `id, platform, url, icon, order_index, is_active, created_at`

// SocialRepo reads and writes social_links.
type SocialRepo struct {
	db *sql.DB
}

func NewSocialRepo(db *sql.DB) *SocialRepo {
	return &SocialRepo{db: db}
}

func scanSocial(s rowScanner) (model.SocialLink, error) {
	var l model.SocialLink
	err := s.Scan(&l.ID, &l.Platform, &l.URL, &l.Icon, &l.OrderIndex, &l.IsActive, &l.CreatedAt)
	return l, err
}

func (r *SocialRepo) ListActive(ctx context.Context) ([]model.SocialLink, error) {
	return queryAll(ctx, r.db, `SELECT `+socialColumns+` FROM social_links WHERE is_active = TRUE ORDER BY order_index, id`, scanSocial)
}

func (r *SocialRepo) ListAll(ctx context.Context) ([]model.SocialLink, error) {
	return queryAll(ctx, r.db, `SELECT `+socialColumns+` FROM social_links ORDER BY order_index, id`, scanSocial)
}

func (r *SocialRepo) Get(ctx context.Context, id uint64) (*model.SocialLink, error) {
	l, err := scanSocial(r.db.QueryRowContext(ctx, `SELECT `+socialColumns+` FROM social_links WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *SocialRepo) Create(ctx context.Context, l *model.SocialLink) error {
	const q = `INSERT INTO social_links (platform, url, icon, order_index, is_active) VALUES (?, ?, ?, ?, ?)`
	id, err := insertID(ctx, r.db, q, l.Platform, l.URL, l.Icon, l.OrderIndex, l.IsActive)
	if err != nil {
		return err
	}
	stored, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	*l = *stored
	return nil
}

func (r *SocialRepo) Update(ctx context.Context, id uint64, p model.SocialLinkPatch) (*model.SocialLink, error) {
	var a assignments
	set(&a, "platform", p.Platform)
	set(&a, "url", p.URL)
	set(&a, "icon", p.Icon)
	set(&a, "order_index", p.OrderIndex)
	set(&a, "is_active", p.IsActive)
	if err := a.exec(ctx, r.db, "social_links", id, false); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *SocialRepo) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, "social_links", id)
}

// Reorder saves the whole list as edited in the admin panel, atomically.
// Position is always written; display fields only when sent.
func (r *SocialRepo) Reorder(ctx context.Context, items []model.ReorderItem) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, it := range items {
			a := socialReorderSet(it)
			if err := a.exec(ctx, tx, "social_links", it.ID, false); err != nil {
				return err
			}
		}
		return nil
	})
}

func socialReorderSet(it model.ReorderItem) assignments {
	var a assignments
	set(&a, "platform", it.Platform)
	set(&a, "url", it.URL)
	set(&a, "icon", it.Icon)
	set(&a, "order_index", &it.OrderIndex)
	return a
}
