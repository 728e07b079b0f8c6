package handler

import (
	"context"  // context carries request deadlines
	"errors"   // errors matches sentinel errors
	"net/http" // http defines status codes

	"github.com/labstack/echo/v4" // echo is the web framework
	"go.uber.org/zap"             // zap structured logging

	"github.com/iliyamo/musician-site/internal/repository" // repository provides ErrNotFound and the repos
)

// CollectionStore is the CRUD surface shared by every admin-managed table.
// T is the row type, P its partial-update patch.
type CollectionStore[T, P any] interface {
	ListAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, row *T) error
	Update(ctx context.Context, id uint64, patch P) (*T, error)
	Delete(ctx context.Context, id uint64) error
}

// Collection serves list, create, update and delete for one table.
// Prepare validates a create payload and fills column defaults; CheckPatch,
// when set, validates the fields present in an update.  A non-empty return
// value from either is sent back as a 400.
type Collection[T, P any] struct {
	Name       string
	Store      CollectionStore[T, P]
	Prepare    func(row *T) string
	CheckPatch func(patch *P) string
	Cache      Invalidator
	Log        *zap.Logger
}

// Register mounts the four routes under path on g.
func (h *Collection[T, P]) Register(g *echo.Group, path string) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}

// List answers [] rather than an error status when the query fails.
func (h *Collection[T, P]) List(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()

	rows, err := h.Store.ListAll(ctx)
	if err != nil {
		h.Log.Error("admin list failed", zap.String("collection", h.Name), zap.Error(err))
		return c.JSON(http.StatusOK, []T{})
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Collection[T, P]) Create(c echo.Context) error {
	var row T
	if err := c.Bind(&row); err != nil {
		return invalidBody(c)
	}
	if msg := h.Prepare(&row); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := withTimeout(c)
	defer cancel()
	if err := h.Store.Create(ctx, &row); err != nil {
		h.Log.Error("admin create failed", zap.String("collection", h.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.Cache.Invalidate(ctx)
	return c.JSON(http.StatusOK, row)
}

// Update writes only the fields present in the body.
func (h *Collection[T, P]) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var patch P
	if err := c.Bind(&patch); err != nil {
		return invalidBody(c)
	}
	if h.CheckPatch != nil {
		if msg := h.CheckPatch(&patch); msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}
	}

	ctx, cancel := withTimeout(c)
	defer cancel()
	row, err := h.Store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found"})
		}
		h.Log.Error("admin update failed", zap.String("collection", h.Name), zap.Uint64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.Cache.Invalidate(ctx)
	return c.JSON(http.StatusOK, row)
}

// Delete is idempotent: a missing row is not an error.
func (h *Collection[T, P]) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	ctx, cancel := withTimeout(c)
	defer cancel()
	if err := h.Store.Delete(ctx, id); err != nil {
		h.Log.Error("admin delete failed", zap.String("collection", h.Name), zap.Uint64("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.Cache.Invalidate(ctx)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
