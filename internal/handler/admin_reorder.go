package handler

import (
	"context"  // context carries request deadlines
	"net/http" // http defines status codes

	json "github.com/goccy/go-json" // goccy/go-json decodes raw request bodies
	"github.com/labstack/echo/v4"   // echo is the web framework
	"go.uber.org/zap"               // zap structured logging

	"github.com/iliyamo/musician-site/internal/model" // model defines the row types
)

// ReorderStore saves a whole edited list in one transaction.
type ReorderStore interface {
	Reorder(ctx context.Context, items []model.ReorderItem) error
}

// ReorderHandler serves the bulk PUT of services, socials and nav links.
// Field is the body key holding the array.
type ReorderHandler struct {
	Field string
	Store ReorderStore
	Cache Invalidator
	Log   *zap.Logger
}

func NewReorderHandler(field string, s ReorderStore, cache Invalidator, log *zap.Logger) *ReorderHandler {
	if cache == nil {
		cache = noopInvalidator{}
	}
	return &ReorderHandler{Field: field, Store: s, Cache: cache, Log: log}
}

func (h *ReorderHandler) Reorder(c echo.Context) error {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return invalidBody(c)
	}
	var items []model.ReorderItem
	raw, ok := body[h.Field]
	if !ok || json.Unmarshal(raw, &items) != nil || items == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": h.Field + " array required"})
	}

	ctx, cancel := withTimeout(c)
	defer cancel()
	if err := h.Store.Reorder(ctx, items); err != nil {
		h.Log.Error("bulk reorder failed", zap.String("field", h.Field), zap.Int("items", len(items)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.Cache.Invalidate(ctx)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
