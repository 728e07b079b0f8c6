package handler

import (
	"context"  // context carries request deadlines
	"net/http" // http defines status codes

	"github.com/labstack/echo/v4" // echo is the web framework
	"go.uber.org/zap"             // zap structured logging
)

// SchemaManager inspects and applies the database schema.
type SchemaManager interface {
	Status(ctx context.Context) (map[string]bool, error)
	Apply(ctx context.Context) error
}

// SetupHandler lets the admin check for and create missing tables.
type SetupHandler struct {
	Schema SchemaManager
	SQL    string
	Log    *zap.Logger
}

func NewSetupHandler(s SchemaManager, sql string, log *zap.Logger) *SetupHandler {
	return &SetupHandler{Schema: s, SQL: sql, Log: log}
}

// Check reports which tables exist.  The DDL is included only while some
// table is missing.
func (h *SetupHandler) Check(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	tables, err := h.Schema.Status(ctx)
	if err != nil {
		h.Log.Error("schema status failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
	ready := true
	for _, ok := range tables {
		ready = ready && ok
	}
	resp := echo.Map{"tables": tables, "ready": ready}
	if !ready {
		resp["sql"] = h.SQL
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SetupHandler) Apply(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	if err := h.Schema.Apply(ctx); err != nil {
		h.Log.Error("schema apply failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": err.Error()})
	}
	h.Log.Info("schema applied")
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Database is ready!"})
}
