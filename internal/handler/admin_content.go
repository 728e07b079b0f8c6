package handler

import (
	"bytes"    // bytes compacts JSON values
	"context"  // context carries request deadlines
	"net/http" // http defines status codes

	json "github.com/goccy/go-json" // goccy/go-json decodes raw request bodies
	"github.com/labstack/echo/v4"   // echo is the web framework
	"go.uber.org/zap"               // zap structured logging
)

// SettingsStore reads and writes the key-value section settings.
type SettingsStore interface {
	Grouped(ctx context.Context) (map[string]map[string]string, error)
	UpsertSection(ctx context.Context, section string, values map[string]string) error
}

// ContentHandler edits the scalar texts of the site, section by section.
type ContentHandler struct {
	Store SettingsStore
	Cache Invalidator
	Log   *zap.Logger
}

func NewContentHandler(s SettingsStore, cache Invalidator, log *zap.Logger) *ContentHandler {
	if cache == nil {
		cache = noopInvalidator{}
	}
	return &ContentHandler{Store: s, Cache: cache, Log: log}
}

// Get returns {section: {key: value}}, or {} when the read fails.
func (h *ContentHandler) Get(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	grouped, err := h.Store.Grouped(ctx)
	if err != nil {
		h.Log.Error("content settings read failed", zap.Error(err))
		return c.JSON(http.StatusOK, echo.Map{})
	}
	return c.JSON(http.StatusOK, grouped)
}

type contentUpdateReq struct {
	Section string                     `json:"section"`
	Data    map[string]json.RawMessage `json:"data"`
}

// Put upserts every pair of one section.  Strings are stored as-is; any
// other JSON value (the instruments and genres arrays) is stored as its
// JSON text.
func (h *ContentHandler) Put(c echo.Context) error {
	var req contentUpdateReq
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return invalidBody(c)
	}
	if req.Section == "" || req.Data == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing section or data"})
	}

	values := make(map[string]string, len(req.Data))
	for k, raw := range req.Data {
		values[k] = settingValue(raw)
	}

	ctx, cancel := withTimeout(c)
	defer cancel()
	if err := h.Store.UpsertSection(ctx, req.Section, values); err != nil {
		h.Log.Error("content settings write failed", zap.String("section", req.Section), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	h.Cache.Invalidate(ctx)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func settingValue(raw json.RawMessage) string {
	var s *string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == nil {
			return "" // null
		}
		return *s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
