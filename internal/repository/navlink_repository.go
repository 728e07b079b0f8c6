package repository

import (
	"context"      // context carries request deadlines
	"database/sql" // sql provides the connection pool and transactions
	"errors"       // errors matches sentinel errors

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
)

const navLinkColumns = `id, label, href, order_index, is_active, created_at`

// NavLinkRepo reads and writes nav_links.
type NavLinkRepo struct {
	db *sql.DB
}

func NewNavLinkRepo(db *sql.DB) *NavLinkRepo {
	return &NavLinkRepo{db: db}
}

func scanNavLink(s rowScanner) (model.NavLink, error) {
	var l model.NavLink
	err := s.Scan(&l.ID, &l.Label, &l.Href, &l.OrderIndex, &l.IsActive, &l.CreatedAt)
	return l, err
}

func (r *NavLinkRepo) ListActive(ctx context.Context) ([]model.NavLink, error) {
	return queryAll(ctx, r.db, `SELECT `+navLinkColumns+` FROM nav_links WHERE is_active = TRUE ORDER BY order_index, id`, scanNavLink)
}

func (r *NavLinkRepo) ListAll(ctx context.Context) ([]model.NavLink, error) {
	return queryAll(ctx, r.db, `SELECT `+navLinkColumns+` FROM nav_links ORDER BY order_index, id`, scanNavLink)
}

func (r *NavLinkRepo) Get(ctx context.Context, id uint64) (*model.NavLink, error) {
	l, err := scanNavLink(r.db.QueryRowContext(ctx, `SELECT `+navLinkColumns+` FROM nav_links WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *NavLinkRepo) Create(ctx context.Context, l *model.NavLink) error {
	const q = `INSERT INTO nav_links (label, href, order_index, is_active) VALUES (?, ?, ?, ?)`
	id, err := insertID(ctx, r.db, q, l.Label, l.Href, l.OrderIndex, l.IsActive)
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

func (r *NavLinkRepo) Update(ctx context.Context, id uint64, p model.NavLinkPatch) (*model.NavLink, error) {
	var a assignments
	set(&a, "label", p.Label)
	set(&a, "href", p.Href)
	set(&a, "order_index", p.OrderIndex)
	set(&a, "is_active", p.IsActive)
	if err := a.exec(ctx, r.db, "nav_links", id, false); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *NavLinkRepo) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, "nav_links", id)
}

// Reorder saves position, and label and href when sent, of every item in
// one transaction.
func (r *NavLinkRepo) Reorder(ctx context.Context, items []model.ReorderItem) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, it := range items {
			a := navLinkReorderSet(it)
			if err := a.exec(ctx, tx, "nav_links", it.ID, false); err != nil {
				return err
			}
		}
		return nil
	})
}

func navLinkReorderSet(it model.ReorderItem) assignments {
	var a assignments
	set(&a, "label", it.Label)
	set(&a, "href", it.Href)
	set(&a, "order_index", &it.OrderIndex)
	return a
}
