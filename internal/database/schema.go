package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed schema.sql
var schemaSQL string

// Tables lists every table the site reads or writes, in creation order.
var Tables = []string{
	"site_content",
	"tracks",
	"gallery_images",
	"services",
	"social_links",
	"nav_links",
	"events",
	"videos",
	"bookings",
}

// SchemaSQL returns the DDL that creates all tables.
func SchemaSQL() string { return schemaSQL }

// statements splits the schema into single statements.  The driver runs
// without multiStatements, so each CREATE goes out on its own.
func statements() []string {
	var out []string
	for _, s := range strings.Split(schemaSQL, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Migrate applies the schema.  Every statement is CREATE TABLE IF NOT
// EXISTS, so running it against a populated database is a no-op.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

// TableStatus reports, per table, whether it exists in the current schema.
func TableStatus(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	const q = `SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE()`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		present[strings.ToLower(name)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	status := make(map[string]bool, len(Tables))
	for _, t := range Tables {
		status[t] = present[t]
	}
	return status, nil
}

// Schema binds the schema helpers to one pool.
type Schema struct {
	DB *sql.DB
}

func (s Schema) Status(ctx context.Context) (map[string]bool, error) { return TableStatus(ctx, s.DB) }

func (s Schema) Apply(ctx context.Context) error { return Migrate(ctx, s.DB) }
