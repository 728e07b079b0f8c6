package handler

import (
	"context"  // context carries request deadlines
	"errors"   // errors matches sentinel errors
	"net/http" // http defines status codes

	"github.com/labstack/echo/v4" // echo is the web framework
	"go.uber.org/zap"             // zap structured logging

	"github.com/iliyamo/musician-site/internal/model"      // model defines the row types
	"github.com/iliyamo/musician-site/internal/validation" // validation checks the booking form
)

// BookingSubmitter runs the side effects of an accepted booking.
type BookingSubmitter interface {
	Submit(ctx context.Context, req validation.BookingRequest) error
}

// BookingLister reads stored bookings, newest first.
type BookingLister interface {
	ListAll(ctx context.Context) ([]model.Booking, error)
}

// BookingHandler serves the public booking form and its admin listing.
type BookingHandler struct {
	Service BookingSubmitter
	Store   BookingLister
	Log     *zap.Logger
}

func NewBookingHandler(s BookingSubmitter, l BookingLister, log *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: s, Store: l, Log: log}
}

func (h *BookingHandler) Submit(c echo.Context) error {
	var req validation.BookingRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := validation.ValidateBooking(&req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Error()})
		}
		return invalidBody(c)
	}

	// the service detaches its steps from the request and bounds each one
	if err := h.Service.Submit(c.Request().Context(), req); err != nil {
		h.Log.Error("send booking failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to submit booking request"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Booking request received!"})
}

// List answers [] when the read fails.
func (h *BookingHandler) List(c echo.Context) error {
	ctx, cancel := withTimeout(c)
	defer cancel()
	rows, err := h.Store.ListAll(ctx)
	if err != nil {
		h.Log.Error("bookings list failed", zap.Error(err))
		return c.JSON(http.StatusOK, []model.Booking{})
	}
	return c.JSON(http.StatusOK, rows)
}
