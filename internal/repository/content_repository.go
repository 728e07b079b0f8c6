package repository

import (
	"context"      // context carries request deadlines
	"database/sql" // sql provides the connection pool and transactions

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
)

// SiteContentRepo reads and upserts the key-value site_content table.
type SiteContentRepo struct {
	db *sql.DB
}

func NewSiteContentRepo(db *sql.DB) *SiteContentRepo {
	return &SiteContentRepo{db: db}
}

// ListAll returns every setting.  Order is irrelevant to callers, which
// group rows by section.
func (r *SiteContentRepo) ListAll(ctx context.Context) ([]model.SiteContentSetting, error) {
	const q = "SELECT id, section, `key`, value, created_at, updated_at FROM site_content"
	return queryAll(ctx, r.db, q, func(s rowScanner) (model.SiteContentSetting, error) {
		var v model.SiteContentSetting
		err := s.Scan(&v.ID, &v.Section, &v.Key, &v.Value, &v.CreatedAt, &v.UpdatedAt)
		return v, err
	})
}

// Grouped returns settings as section -> key -> value.
func (r *SiteContentRepo) Grouped(ctx context.Context) (map[string]map[string]string, error) {
	rows, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return GroupSettings(rows), nil
}

// UpsertSection writes every key of one section, inserting new keys and
// overwriting existing ones (unique on section, key).  Keys absent from
// values are left alone.
func (r *SiteContentRepo) UpsertSection(ctx context.Context, section string, values map[string]string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		const q = "INSERT INTO site_content (section, `key`, value) VALUES (?, ?, ?) " +
			"ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = CURRENT_TIMESTAMP"
		for k, v := range values {
			if _, err := tx.ExecContext(ctx, q, section, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// GroupSettings folds flat rows into section -> key -> value.
func GroupSettings(rows []model.SiteContentSetting) map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, row := range rows {
		m, ok := out[row.Section]
		if !ok {
			m = make(map[string]string)
			out[row.Section] = m
		}
		m[row.Key] = row.Value
	}
	return out
}
