package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/musician-site/internal/model"
	"github.com/iliyamo/musician-site/internal/validation"
)

type stubSubmitter struct {
	err  error
	got  []validation.BookingRequest
	live bool
}

func (s *stubSubmitter) Submit(ctx context.Context, req validation.BookingRequest) error {
	s.got = append(s.got, req)
	s.live = ctx.Err() == nil
	return s.err
}

type stubBookings struct {
	rows []model.Booking
	err  error
}

func (s stubBookings) ListAll(context.Context) ([]model.Booking, error) { return s.rows, s.err }

const validBookingJSON = `{"name":"Ana","email":"ana@example.com","phone":"","eventType":"Wedding",
"eventDate":"2026-06-01","venue":"Town hall","message":"We would love a string trio."}`

func TestSubmitBooking(t *testing.T) {
	s := &stubSubmitter{}
	h := NewBookingHandler(s, stubBookings{}, zap.NewNop())
	mount := func(e *echo.Echo) { e.POST("/api/send-booking", h.Submit) }

	rec := serve(t, mount, http.MethodPost, "/api/send-booking", jsonBody(validBookingJSON), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if m := decodeMap(t, rec); m["success"] != true || m["message"] != "Booking request received!" {
		t.Errorf("body %v", m)
	}
	if len(s.got) != 1 || s.got[0].EventType != "Wedding" || !s.live {
		t.Errorf("submitted %+v (live ctx %v)", s.got, s.live)
	}
}

func TestSubmitBookingValidation(t *testing.T) {
	s := &stubSubmitter{}
	h := NewBookingHandler(s, stubBookings{}, zap.NewNop())
	mount := func(e *echo.Echo) { e.POST("/api/send-booking", h.Submit) }

	rec := serve(t, mount, http.MethodPost, "/api/send-booking",
		jsonBody(`{"name":"A","email":"nope","eventType":"Gig","eventDate":"soon","venue":"Bar","message":"Play please!"}`), nil)
	expectError(t, rec, http.StatusBadRequest, "Name must be at least 2 characters, Invalid email address")

	rec = serve(t, mount, http.MethodPost, "/api/send-booking", jsonBody(`[1,2`), nil)
	expectError(t, rec, http.StatusBadRequest, "Invalid request body")

	if len(s.got) != 0 {
		t.Error("invalid booking reached the service")
	}
}

func TestSubmitBookingServiceError(t *testing.T) {
	h := NewBookingHandler(&stubSubmitter{err: context.DeadlineExceeded}, stubBookings{}, zap.NewNop())
	mount := func(e *echo.Echo) { e.POST("/api/send-booking", h.Submit) }
	rec := serve(t, mount, http.MethodPost, "/api/send-booking", jsonBody(validBookingJSON), nil)
	expectError(t, rec, http.StatusInternalServerError, "Failed to submit booking request")
}

func TestListBookingsFallsBackToEmpty(t *testing.T) {
	h := NewBookingHandler(&stubSubmitter{}, stubBookings{err: errors.New("db down")}, zap.NewNop())
	rec := serve(t, func(e *echo.Echo) { e.GET("/b", h.List) }, http.MethodGet, "/b", nil, nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "[]\n" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}
