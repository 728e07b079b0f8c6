// Package repository contains data access logic separated from HTTP handlers.
// Every repository wraps a *sql.DB and speaks raw SQL to MySQL.
package repository

import "errors"

// ErrNotFound is returned when a row addressed by id does not exist.
// Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
