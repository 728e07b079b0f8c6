package repository

import (
	"context"      // context carries request deadlines
	"database/sql" // sql provides the connection pool and transactions
	"strings"      // strings trims and joins text
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryAll runs q and scans every row.  The result is never nil so that
// handlers encode an empty collection as [].
func queryAll[T any](ctx context.Context, db *sql.DB, q string, scan func(rowScanner) (T, error), args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// assignments accumulates the SET clause of a partial UPDATE.
type assignments struct {
	cols []string
	args []any
}

// set adds col = *v when v is non-nil.
func set[T any](a *assignments, col string, v *T) {
	if v == nil {
		return
	}
	a.cols = append(a.cols, col+" = ?")
	a.args = append(a.args, *v)
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// exec applies the collected assignments to the row with the given id.
// touch stamps updated_at for tables that carry it.  An empty set is a
// no-op so a body without known fields simply returns the current row.
func (a *assignments) exec(ctx context.Context, db execer, table string, id uint64, touch bool) error {
	if len(a.cols) == 0 {
		return nil
	}
	cols := a.cols
	if touch {
		cols = append(cols, "updated_at = CURRENT_TIMESTAMP")
	}
	q := "UPDATE " + table + " SET " + strings.Join(cols, ", ") + " WHERE id = ?"
	_, err := db.ExecContext(ctx, q, append(a.args, id)...)
	return err
}

// withTx runs fn inside a transaction, committing on success and rolling
// back when fn (or the commit) fails.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	return fn(tx)
}

// deleteByID removes one row.  Deleting a missing id is not an error.
func deleteByID(ctx context.Context, db *sql.DB, table string, id uint64) error {
	_, err := db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	return err
}

// insertID executes an INSERT and returns the generated id.
func insertID(ctx context.Context, db *sql.DB, q string, args ...any) (uint64, error) {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
