package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/musician-site/internal/model"
	"github.com/iliyamo/musician-site/internal/repository"
)

type countingCache struct{ n int }

func (c *countingCache) Invalidate(context.Context) { c.n++ }

type memCollection[T, P any] struct {
	rows      []T
	listErr   error
	created   []T
	updateErr error
	updated   *T
	deleted   []uint64
}

func (m *memCollection[T, P]) ListAll(context.Context) ([]T, error) { return m.rows, m.listErr }

func (m *memCollection[T, P]) Create(_ context.Context, row *T) error {
	m.created = append(m.created, *row)
	return nil
}

func (m *memCollection[T, P]) Update(context.Context, uint64, P) (*T, error) {
	return m.updated, m.updateErr
}

func (m *memCollection[T, P]) Delete(_ context.Context, id uint64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func mountTracks(store *memCollection[model.Track, model.TrackPatch], cache Invalidator) func(*echo.Echo) {
	return func(e *echo.Echo) {
		NewTracksHandler(store, cache, zap.NewNop()).Register(e.Group("/api/admin"), "/tracks")
	}
}

func TestCollectionCreate(t *testing.T) {
	store := &memCollection[model.Track, model.TrackPatch]{}
	cache := &countingCache{}
	mount := mountTracks(store, cache)

	rec := serve(t, mount, http.MethodPost, "/api/admin/tracks", jsonBody(`{"title":"Intro"}`), nil)
	expectError(t, rec, http.StatusBadRequest, "Title and audio_src are required")
	if len(store.created) != 0 || cache.n != 0 {
		t.Fatal("rejected row was written")
	}

	rec = serve(t, mount, http.MethodPost, "/api/admin/tracks",
		jsonBody(`{"title":"Intro","audio_src":"/a.mp3","cover_image":""}`), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	got := store.created[0]
	if !got.IsActive || got.CoverImage != nil {
		t.Errorf("defaults not applied: %+v", got)
	}
	if cache.n != 1 {
		t.Errorf("cache invalidated %d times, want 1", cache.n)
	}
}

func TestCollectionListFallsBackToEmpty(t *testing.T) {
	store := &memCollection[model.Track, model.TrackPatch]{listErr: errors.New("db down")}
	rec := serve(t, mountTracks(store, nil), http.MethodGet, "/api/admin/tracks", nil, nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "[]\n" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestCollectionUpdateAndDelete(t *testing.T) {
	store := &memCollection[model.Track, model.TrackPatch]{updateErr: repository.ErrNotFound}
	cache := &countingCache{}
	mount := mountTracks(store, cache)

	rec := serve(t, mount, http.MethodPut, "/api/admin/tracks/abc", jsonBody(`{}`), nil)
	expectError(t, rec, http.StatusBadRequest, "Invalid ID")

	rec = serve(t, mount, http.MethodPut, "/api/admin/tracks/9", jsonBody(`{"title":"x"}`), nil)
	expectError(t, rec, http.StatusNotFound, "Not found")

	store.updateErr = nil
	store.updated = &model.Track{ID: 9, Title: "x"}
	rec = serve(t, mount, http.MethodPut, "/api/admin/tracks/9", jsonBody(`{"title":"x"}`), nil)
	if rec.Code != http.StatusOK || decodeMap(t, rec)["title"] != "x" {
		t.Errorf("update: %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(t, mount, http.MethodDelete, "/api/admin/tracks/0", nil, nil)
	expectError(t, rec, http.StatusBadRequest, "Invalid ID")

	rec = serve(t, mount, http.MethodDelete, "/api/admin/tracks/12", nil, nil)
	if rec.Code != http.StatusOK || decodeMap(t, rec)["success"] != true {
		t.Errorf("delete: %d %s", rec.Code, rec.Body.String())
	}
	if len(store.deleted) != 1 || store.deleted[0] != 12 || cache.n != 2 {
		t.Errorf("deleted %v, invalidations %d", store.deleted, cache.n)
	}
}

func TestPrepareRules(t *testing.T) {
	if msg := prepareEvent(&model.Event{Title: "Gig", Date: "2026-01-01", Type: "soon"}); msg != "Type must be upcoming or past" {
		t.Errorf("event type: %q", msg)
	}
	if msg := prepareService(&model.Service{Title: "Live"}); msg != "Title, description and icon are required" {
		t.Errorf("service: %q", msg)
	}
	if msg := prepareNavLink(&model.NavLink{Label: "Home"}); msg != "Label and href are required" {
		t.Errorf("nav link: %q", msg)
	}

	v := &model.Video{Title: "Live set", URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}
	if msg := prepareVideo(v); msg != "" {
		t.Fatalf("video from url: %q", msg)
	}
	if v.Platform != "youtube" || v.VideoID != "dQw4w9WgXcQ" || v.URL != "" || !v.IsActive {
		t.Errorf("video = %+v", v)
	}
	if msg := prepareVideo(&model.Video{Title: "x", Platform: "vimeo", VideoID: "1"}); msg != "Platform must be youtube or instagram" {
		t.Errorf("video platform: %q", msg)
	}
}

type stubReorder struct {
	items []model.ReorderItem
	err   error
}

func (s *stubReorder) Reorder(_ context.Context, items []model.ReorderItem) error {
	s.items = items
	return s.err
}

func TestReorder(t *testing.T) {
	store := &stubReorder{}
	h := NewReorderHandler("services", store, nil, zap.NewNop())
	mount := func(e *echo.Echo) { e.PUT("/api/admin/services", h.Reorder) }

	for _, body := range []string{`{}`, `{"services":null}`, `{"services":{"id":1}}`, `{"socials":[]}`} {
		rec := serve(t, mount, http.MethodPut, "/api/admin/services", jsonBody(body), nil)
		expectError(t, rec, http.StatusBadRequest, "services array required")
	}

	rec := serve(t, mount, http.MethodPut, "/api/admin/services",
		jsonBody(`{"services":[{"id":3,"order_index":0},{"id":1,"order_index":1}]}`), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.items) != 2 || store.items[0].ID != 3 {
		t.Errorf("items = %+v", store.items)
	}

	store.err = errors.New("tx aborted")
	rec = serve(t, mount, http.MethodPut, "/api/admin/services", jsonBody(`{"services":[]}`), nil)
	expectError(t, rec, http.StatusInternalServerError, "tx aborted")
}

type stubSettings struct {
	section string
	values  map[string]string
}

func (s *stubSettings) Grouped(context.Context) (map[string]map[string]string, error) {
	return nil, errors.New("db down")
}

func (s *stubSettings) UpsertSection(_ context.Context, section string, values map[string]string) error {
	s.section, s.values = section, values
	return nil
}

func TestContentPut(t *testing.T) {
	store := &stubSettings{}
	h := NewContentHandler(store, nil, zap.NewNop())
	mount := func(e *echo.Echo) {
		e.GET("/api/admin/content", h.Get)
		e.PUT("/api/admin/content", h.Put)
	}

	rec := serve(t, mount, http.MethodPut, "/api/admin/content", jsonBody(`{"section":"hero"}`), nil)
	expectError(t, rec, http.StatusBadRequest, "Missing section or data")

	rec = serve(t, mount, http.MethodPut, "/api/admin/content",
		jsonBody(`{"section":"about","data":{"bio":"Hi","instruments":[ "Piano", "Voice" ],"note":null}}`), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	want := map[string]string{"bio": "Hi", "instruments": `["Piano","Voice"]`, "note": ""}
	for k, v := range want {
		if store.values[k] != v {
			t.Errorf("%s = %q, want %q", k, store.values[k], v)
		}
	}

	rec = serve(t, mount, http.MethodGet, "/api/admin/content", nil, nil)
	if rec.Body.String() != "{}\n" {
		t.Errorf("failed read body %q", rec.Body.String())
	}
}

func TestReorderPositionOnlyBody(t *testing.T) {
	store := &stubReorder{}
	h := NewReorderHandler("socials", store, nil, zap.NewNop())
	mount := func(e *echo.Echo) { e.PUT("/api/admin/socials", h.Reorder) }

	rec := serve(t, mount, http.MethodPut, "/api/admin/socials", jsonBody(`{"socials":[{"id":1,"order_index":2}]}`), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	it := store.items[0]
	if it.ID != 1 || it.OrderIndex != 2 || it.Platform != nil || it.URL != nil || it.Icon != nil {
		t.Errorf("item = %+v, display fields must stay unset", it)
	}
}

func TestUpdateRejectsInvalidEnums(t *testing.T) {
	events := &memCollection[model.Event, model.EventPatch]{updated: &model.Event{ID: 3}}
	videos := &memCollection[model.Video, model.VideoPatch]{updated: &model.Video{ID: 4}}
	mount := func(e *echo.Echo) {
		g := e.Group("/api/admin")
		NewEventsHandler(events, nil, zap.NewNop()).Register(g, "/events")
		NewVideosHandler(videos, nil, zap.NewNop()).Register(g, "/videos")
	}

	rec := serve(t, mount, http.MethodPut, "/api/admin/events/3", jsonBody(`{"type":"someday"}`), nil)
	expectError(t, rec, http.StatusBadRequest, "Type must be upcoming or past")
	rec = serve(t, mount, http.MethodPut, "/api/admin/videos/4", jsonBody(`{"platform":"vimeo"}`), nil)
	expectError(t, rec, http.StatusBadRequest, "Platform must be youtube or instagram")

	rec = serve(t, mount, http.MethodPut, "/api/admin/events/3", jsonBody(`{"type":"past"}`), nil)
	if rec.Code != http.StatusOK {
		t.Errorf("valid event type: status %d", rec.Code)
	}
	rec = serve(t, mount, http.MethodPut, "/api/admin/videos/4", jsonBody(`{"title":"New cut"}`), nil)
	if rec.Code != http.StatusOK {
		t.Errorf("patch without platform: status %d", rec.Code)
	}
}
