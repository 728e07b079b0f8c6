package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type stubSchema struct {
	tables   map[string]bool
	applyErr error
}

func (s stubSchema) Status(context.Context) (map[string]bool, error) { return s.tables, nil }
func (s stubSchema) Apply(context.Context) error                     { return s.applyErr }

func TestSetupCheck(t *testing.T) {
	h := NewSetupHandler(stubSchema{tables: map[string]bool{"tracks": true, "bookings": false}}, "CREATE TABLE x;", zap.NewNop())
	rec := serve(t, func(e *echo.Echo) { e.GET("/api/setup", h.Check) }, http.MethodGet, "/api/setup", nil, nil)
	m := decodeMap(t, rec)
	if m["ready"] != false || m["sql"] != "CREATE TABLE x;" {
		t.Errorf("incomplete schema: %v", m)
	}

	h.Schema = stubSchema{tables: map[string]bool{"tracks": true}}
	rec = serve(t, func(e *echo.Echo) { e.GET("/api/setup", h.Check) }, http.MethodGet, "/api/setup", nil, nil)
	m = decodeMap(t, rec)
	if _, ok := m["sql"]; m["ready"] != true || ok {
		t.Errorf("complete schema: %v", m)
	}
}

func TestSetupApply(t *testing.T) {
	h := NewSetupHandler(stubSchema{}, "", zap.NewNop())
	mount := func(e *echo.Echo) { e.POST("/api/setup", h.Apply) }
	rec := serve(t, mount, http.MethodPost, "/api/setup", nil, nil)
	if m := decodeMap(t, rec); m["message"] != "Database is ready!" {
		t.Errorf("apply: %v", m)
	}

	h.Schema = stubSchema{applyErr: errors.New("access denied")}
	rec = serve(t, mount, http.MethodPost, "/api/setup", nil, nil)
	if m := decodeMap(t, rec); rec.Code != http.StatusInternalServerError || m["success"] != false || m["error"] != "access denied" {
		t.Errorf("failed apply: %d %v", rec.Code, m)
	}
}

func TestParseVideoHandler(t *testing.T) {
	mount := func(e *echo.Echo) { e.POST("/api/admin/videos/parse", ParseVideo) }
	rec := serve(t, mount, http.MethodPost, "/api/admin/videos/parse", jsonBody(`{"url":"https://youtu.be/dQw4w9WgXcQ"}`), nil)
	if m := decodeMap(t, rec); m["platform"] != "youtube" || m["video_id"] != "dQw4w9WgXcQ" {
		t.Errorf("parse: %v", m)
	}
	rec = serve(t, mount, http.MethodPost, "/api/admin/videos/parse", jsonBody(`{"url":"https://vimeo.com/1"}`), nil)
	expectError(t, rec, http.StatusBadRequest, "Unsupported video URL. Use a YouTube or Instagram link")
}
