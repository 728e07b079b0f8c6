package repository

import (
	"context"      // context carries request deadlines
	"database/sql" // sql provides the connection pool and transactions
	"errors"       // errors matches sentinel errors

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
)

const serviceColumns = `id, title, description, icon, order_index, is_active, created_at, updated_at`

// ServiceRepo reads and writes the services table.
type ServiceRepo struct {
	db *sql.DB
}

func NewServiceRepo(db *sql.DB) *ServiceRepo {
	return &ServiceRepo{db: db}
}

func scanService(s rowScanner) (model.Service, error) {
	var v model.Service
	err := s.Scan(&v.ID, &v.Title, &v.Description, &v.Icon, &v.OrderIndex, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (r *ServiceRepo) ListActive(ctx context.Context) ([]model.Service, error) {
	return queryAll(ctx, r.db, `SELECT `+serviceColumns+` FROM services WHERE is_active = TRUE ORDER BY order_index, id`, scanService)
}

func (r *ServiceRepo) ListAll(ctx context.Context) ([]model.Service, error) {
	return queryAll(ctx, r.db, `SELECT `+serviceColumns+` FROM services ORDER BY order_index, id`, scanService)
}

func (r *ServiceRepo) Get(ctx context.Context, id uint64) (*model.Service, error) {
	v, err := scanService(r.db.QueryRowContext(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *ServiceRepo) Create(ctx context.Context, v *model.Service) error {
	const q = `INSERT INTO services (title, description, icon, order_index, is_active) VALUES (?, ?, ?, ?, ?)`
	id, err := insertID(ctx, r.db, q, v.Title, v.Description, v.Icon, v.OrderIndex, v.IsActive)
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

func (r *ServiceRepo) Update(ctx context.Context, id uint64, p model.ServicePatch) (*model.Service, error) {
	var a assignments
	set(&a, "title", p.Title)
	set(&a, "description", p.Description)
	set(&a, "icon", p.Icon)
	set(&a, "order_index", p.OrderIndex)
	set(&a, "is_active", p.IsActive)
	if err := a.exec(ctx, r.db, "services", id, true); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *ServiceRepo) Delete(ctx context.Context, id uint64) error {
	return deleteByID(ctx, r.db, "services", id)
}

// Reorder rewrites order_index for every item in a single transaction.
// The first failing update aborts and rolls back the whole batch.
func (r *ServiceRepo) Reorder(ctx context.Context, items []model.ReorderItem) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = `UPDATE services SET order_index = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
		for _, it := range items {
			if _, err := tx.ExecContext(ctx, q, it.OrderIndex, it.ID); err != nil {
				return err
			}
		}
		return nil
	})
}
