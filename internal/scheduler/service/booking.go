package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/scheduler/internal/scheduler/domain"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/notify"
	"github.com/aussiebroadwan/scheduler/internal/scheduler/store"
	"github.com/aussiebroadwan/scheduler/pkg/idx"
	"github.com/aussiebroadwan/scheduler/pkg/slogx"
)

const InvitationSubject = "Interview Invitation"

// BookingService owns the booking lifecycle: conflict-checked creation,
// invite responses and status reads.
type BookingService struct {
	Store    store.Store
	Notifier notify.Notifier

	// Organizer is the ORGANIZER address on calendar invites. Optional.
	Organizer string

	// InviteDuration is the length of the calendar event. Zero uses
	// notify.DefaultEventDuration.
	InviteDuration time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

func NewBookingService(st store.Store, n notify.Notifier) *BookingService {
	return &BookingService{Store: st, Notifier: n, Now: time.Now}
}

func (s *BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBooking books req.ProposedAt if no other booking holds that exact
// instant, records a pending invite for the recipient and sends the
// invitation. Delivery failures are logged, never returned.
func (s *BookingService) CreateBooking(ctx context.Context, req domain.CreateBookingRequest) (domain.BookingView, error) {
	log := slogx.FromContext(ctx)

	now := s.now()
	if err := validateCreate(req, now); err != nil {
		log.Warn("rejected booking request", slog.Any("error", err))
		return domain.BookingView{}, err
	}

	b := domain.Booking{
		ID:              idx.NewAt(now).String(),
		CandidateName:   strings.TrimSpace(req.CandidateName),
		InterviewerName: strings.TrimSpace(req.InterviewerName),
		ProposedAt:      req.ProposedAt.UTC(),
		Platform:        req.Platform,
		Status:          domain.BookingPending,
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}
	r := domain.InviteResponse{
		ID:             idx.NewAt(now).String(),
		BookingID:      b.ID,
		RecipientEmail: strings.TrimSpace(req.RecipientEmail),
		ResponseStatus: domain.ResponsePending,
		CreatedAt:      now.UTC(),
		UpdatedAt:      now.UTC(),
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		taken, err := tx.Bookings().ExistsAt(ctx, b.ProposedAt)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotConflict
		}

		if err := tx.Bookings().CreateBooking(ctx, b); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrSlotConflict
			}
			return err
		}
		return tx.InviteResponses().CreateInviteResponse(ctx, r)
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			log.Info("slot already booked", slog.Time("proposed_at", b.ProposedAt))
			return domain.BookingView{}, ErrSlotConflict
		}
		log.Error("failed to create booking", slog.Any("error", err))
		return domain.BookingView{}, err
	}

	log.Info("booking created",
		slog.String("booking_id", b.ID),
		slog.Time("proposed_at", b.ProposedAt),
		slog.String("platform", string(b.Platform)),
	)

	s.sendInvitation(ctx, b, r)

	return domain.NewBookingView(b, r), nil
}

// RespondToInvite overwrites the booking's invite response with req and
// re-derives the booking status from it.
func (s *BookingService) RespondToInvite(ctx context.Context, req domain.RespondRequest) (domain.BookingView, error) {
	log := slogx.FromContext(ctx).With(slog.String("booking_id", req.BookingID))

	req.ResponseStatus, _ = domain.ParseResponseStatus(string(req.ResponseStatus))
	if err := validateRespond(req); err != nil {
		log.Warn("rejected invite response", slog.Any("error", err))
		return domain.BookingView{}, err
	}

	var view domain.BookingView
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		b, r, err := loadBooking(ctx, tx, req.BookingID)
		if err != nil {
			return err
		}

		r.ResponseStatus = req.ResponseStatus
		r.ProposedAt = nil
		if req.ProposedAt != nil {
			at := req.ProposedAt.UTC()
			r.ProposedAt = &at
		}
		if err := tx.InviteResponses().UpdateInviteResponse(ctx, r); err != nil {
			return mapLookup(err, ErrInviteNotFound)
		}

		status := domain.StatusForResponse(r.ResponseStatus)
		if err := tx.Bookings().UpdateBookingStatus(ctx, b.ID, status); err != nil {
			return mapLookup(err, ErrBookingNotFound)
		}

		b, r, err = loadBooking(ctx, tx, b.ID)
		if err != nil {
			return err
		}
		view = domain.NewBookingView(b, r)
		return nil
	})
	if err != nil {
		logLookupError(log, "failed to record invite response", err)
		return domain.BookingView{}, err
	}

	log.Info("invite response recorded",
		slog.String("response_status", string(req.ResponseStatus)),
		slog.String("booking_status", string(view.Status)),
	)
	return view, nil
}

// GetBookingStatus returns the booking and its invite response.
func (s *BookingService) GetBookingStatus(ctx context.Context, bookingID string) (domain.BookingView, error) {
	log := slogx.FromContext(ctx).With(slog.String("booking_id", bookingID))

	b, r, err := loadBooking(ctx, s.Store, bookingID)
	if err != nil {
		logLookupError(log, "failed to load booking", err)
		return domain.BookingView{}, err
	}
	return domain.NewBookingView(b, r), nil
}

func loadBooking(ctx context.Context, st store.Store, id string) (domain.Booking, domain.InviteResponse, error) {
	b, err := st.Bookings().GetBookingByID(ctx, id)
	if err != nil {
		return domain.Booking{}, domain.InviteResponse{}, mapLookup(err, ErrBookingNotFound)
	}
	r, err := st.InviteResponses().GetInviteResponseByBookingID(ctx, id)
	if err != nil {
		return domain.Booking{}, domain.InviteResponse{}, mapLookup(err, ErrInviteNotFound)
	}
	return b, r, nil
}

func mapLookup(err, notFound error) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound
	}
	return err
}

func logLookupError(log *slog.Logger, msg string, err error) {
	if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrInviteNotFound) {
		log.Info(msg, slog.Any("error", err))
		return
	}
	log.Error(msg, slog.Any("error", err))
}

// InvitationMessage composes the email sent to the recipient of a new
// booking.
func (s *BookingService) InvitationMessage(b domain.Booking, r domain.InviteResponse) notify.Message {
	when := b.ProposedAt.UTC().Format(time.RFC3339)
	body := fmt.Sprintf("Dear %s,\nYour interview with %s is scheduled at %s on %s.",
		b.CandidateName, b.InterviewerName, when, b.Platform)

	return notify.Message{
		To:      r.RecipientEmail,
		Subject: InvitationSubject,
		Body:    body,
		Event: &notify.Event{
			UID:         b.ID,
			Summary:     fmt.Sprintf("Interview: %s with %s", b.CandidateName, b.InterviewerName),
			Description: body,
			Location:    string(b.Platform),
			Organizer:   s.Organizer,
			Attendee:    r.RecipientEmail,
			StartsAt:    b.ProposedAt,
			Duration:    s.InviteDuration,
		},
	}
}

func (s *BookingService) sendInvitation(ctx context.Context, b domain.Booking, r domain.InviteResponse) {
	if s.Notifier == nil {
		return
	}
	log := slogx.FromContext(ctx)

	if err := s.Notifier.Send(ctx, s.InvitationMessage(b, r)); err != nil {
		log.Warn("failed to send invitation",
			slog.String("booking_id", b.ID),
			slog.String("to", r.RecipientEmail),
			slog.Any("error", err),
		)
		return
	}
	log.Debug("invitation sent", slog.String("booking_id", b.ID))
}
