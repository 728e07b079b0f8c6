// Package service holds workflows that span several backends.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/musician-site/internal/mail"
	"github.com/iliyamo/musician-site/internal/metrics"
	"github.com/iliyamo/musician-site/internal/model"
	"github.com/iliyamo/musician-site/internal/queue"
	"github.com/iliyamo/musician-site/internal/validation"
)

// BookingStore persists submissions.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
}

// BookingPublisher announces accepted submissions.
type BookingPublisher interface {
	PublishBookingReceived(ctx context.Context, ev queue.BookingReceivedEvent) error
}

// DefaultStepTimeout bounds each side effect of a booking.
const DefaultStepTimeout = 10 * time.Second

// BookingService accepts a validated booking and fans it out to the
// database, the broker and the owner's inbox.  Each of the three steps is
// best-effort: a failure is logged and counted, and the remaining steps
// still run.  Publisher and Mailer may be nil.
type BookingService struct {
	Store       BookingStore
	Publisher   BookingPublisher
	Mailer      mail.Sender
	From        string
	To          string
	Log         *zap.Logger
	Now         func() time.Time
	StepTimeout time.Duration // per step; DefaultStepTimeout when zero
}

// Submit runs persist, publish and email in that order.  Each step gets
// its own deadline detached from ctx, so a hung database or a client that
// hangs up cannot starve the email.  Submit always returns nil.
func (s *BookingService) Submit(ctx context.Context, req validation.BookingRequest) error {
	metrics.BookingsReceivedTotal.Inc()
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	base := context.WithoutCancel(ctx)

	b := model.Booking{
		Name:      req.Name,
		Email:     req.Email,
		EventType: req.EventType,
		EventDate: req.EventDate,
		Venue:     req.Venue,
		Message:   req.Message,
		Status:    model.BookingStatusNew,
	}
	if req.Phone != "" {
		phone := req.Phone
		b.Phone = &phone
	}
	if err := s.step(base, func(ctx context.Context) error { return s.Store.Create(ctx, &b) }); err != nil {
		s.stepFailed("persist", err)
	}

	if s.Publisher != nil {
		ev := queue.BookingReceivedEvent{
			BookingID:  b.ID,
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			EventType:  req.EventType,
			EventDate:  req.EventDate,
			Venue:      req.Venue,
			ReceivedAt: now().UTC().Format(time.RFC3339),
		}
		if err := s.step(base, func(ctx context.Context) error { return s.Publisher.PublishBookingReceived(ctx, ev) }); err != nil {
			s.stepFailed("publish", err)
		}
	}

	if s.Mailer != nil {
		msg := mail.BookingMessage(mail.Booking{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			EventType: req.EventType,
			EventDate: req.EventDate,
			Venue:     req.Venue,
			Message:   req.Message,
		}, s.From, s.To)
		if err := s.step(base, func(ctx context.Context) error { return s.Mailer.Send(ctx, msg) }); err != nil {
			s.stepFailed("email", err)
		}
	}
	return nil
}

func (s *BookingService) step(base context.Context, fn func(context.Context) error) error {
	d := s.StepTimeout
	if d <= 0 {
		d = DefaultStepTimeout
	}
	ctx, cancel := context.WithTimeout(base, d)
	defer cancel()
	return fn(ctx)
}

func (s *BookingService) stepFailed(step string, err error) {
	metrics.BookingStepFailuresTotal.WithLabelValues(step).Inc()
	if s.Log != nil {
		s.Log.Error("booking step failed", zap.String("step", step), zap.Error(err))
	}
}
