package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/internal/errs"
	"github.com/Astemirdum/rental-service/internal/model"
	"github.com/Astemirdum/rental-service/internal/repository"
	"github.com/Astemirdum/rental-service/pkg/kafka"
	"github.com/Astemirdum/rental-service/pkg/metrics"
)

type Service struct {
	log    *zap.Logger
	repo   repository.BookingRepository
	users  repository.UserRepository
	items  repository.ItemRepository
	events EventLog
	clk    clock.Clock
}

func NewService(
	repo repository.BookingRepository,
	users repository.UserRepository,
	items repository.ItemRepository,
	events EventLog,
	clk clock.Clock,
	log *zap.Logger,
) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		users:  users,
		items:  items,
		events: events,
		clk:    clk,
	}
}

// CreateBooking registers a booking request for an item. A new booking always
// starts in WAITING.
func (s *Service) CreateBooking(ctx context.Context, req model.CreateBookingRequest, bookerID int64) (model.Booking, error) {
	if err := s.userExists(ctx, bookerID); err != nil {
		return model.Booking{}, err
	}
	if !req.Start.Before(req.End) {
		s.log.Warn("booking start date must be before end date",
			zap.Time("start", req.Start), zap.Time("end", req.End))
		return model.Booking{}, errors.Wrap(errs.ErrInvalidRequest, "start date must be before end date")
	}
	item, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			s.log.Warn("item not found", zap.Int64("itemId", req.ItemID))
			return model.Booking{}, errors.Wrapf(errs.ErrNotFound, "item id=%d", req.ItemID)
		}
		return model.Booking{}, err
	}
	if item.OwnerID == bookerID {
		s.log.Warn("owner cannot book own item",
			zap.Int64("itemId", item.ID), zap.Int64("userId", bookerID))
		return model.Booking{}, errors.Wrapf(errs.ErrForbidden, "item id=%d belongs to user id=%d", item.ID, bookerID)
	}
	if !item.Available {
		s.log.Warn("item is not available", zap.Int64("itemId", item.ID))
		return model.Booking{}, errors.Wrapf(errs.ErrInvalidRequest, "item id=%d is not available", item.ID)
	}
	active, err := s.repo.ListActiveByItem(ctx, item.ID)
	if err != nil {
		return model.Booking{}, err
	}
	for _, b := range active {
		if b.StartDate.Before(s.clk.Now()) && b.EndDate.After(s.clk.Now()) {
			s.log.Warn("item is already in use",
				zap.Int64("itemId", item.ID), zap.Int64("bookingId", b.ID))
			return model.Booking{}, errors.Wrapf(errs.ErrInvalidRequest, "item id=%d is already in use", item.ID)
		}
	}

	created, err := s.repo.Create(ctx, model.Booking{
		StartDate: req.Start,
		EndDate:   req.End,
		ItemID:    item.ID,
		BookerID:  bookerID,
		Status:    model.StatusWaiting,
	})
	if err != nil {
		return model.Booking{}, err
	}
	s.log.Info("booking request created",
		zap.Int64("bookingId", created.ID), zap.Int64("itemId", item.ID), zap.Int64("bookerId", bookerID))
	metrics.IncBookingCreated()
	s.emit(kafka.EventBookingCreated, created)
	return created, nil
}

// ApproveBooking records the item owner's decision on a booking. A rejected
// booking may be rejected again; an approved one is final.
func (s *Service) ApproveBooking(ctx context.Context, bookingID, ownerID int64, approved bool) (model.Booking, error) {
	if err := s.userExists(ctx, ownerID); err != nil {
		return model.Booking{}, err
	}
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			s.log.Warn("booking not found", zap.Int64("bookingId", bookingID))
			return model.Booking{}, errors.Wrapf(errs.ErrNotFound, "booking id=%d", bookingID)
		}
		return model.Booking{}, err
	}
	item, err := s.items.GetByID(ctx, booking.ItemID)
	if err != nil {
		return model.Booking{}, err
	}
	if item.OwnerID != ownerID {
		s.log.Warn("only the item owner can approve or reject bookings",
			zap.Int64("bookingId", bookingID), zap.Int64("userId", ownerID))
		return model.Booking{}, errors.Wrapf(errs.ErrForbidden, "user id=%d is not the owner of item id=%d", ownerID, item.ID)
	}
	if booking.Status == model.StatusApproved {
		s.log.Warn("booking is already approved", zap.Int64("bookingId", bookingID))
		return model.Booking{}, errors.Wrapf(errs.ErrInvalidRequest, "booking id=%d is already approved", bookingID)
	}

	status := model.StatusRejected
	eventType := kafka.EventBookingRejected
	if approved {
		status = model.StatusApproved
		eventType = kafka.EventBookingApproved
	}
	updated, err := s.repo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return model.Booking{}, err
	}
	s.log.Info("owner decision recorded",
		zap.Int64("bookingId", bookingID), zap.String("status", string(status)))
	metrics.IncOwnerDecision(strings.ToLower(string(status)))
	s.emit(eventType, updated)
	return updated, nil
}

// GetBooking returns a booking to its booker or to the item's owner.
func (s *Service) GetBooking(ctx context.Context, bookingID, userID int64) (model.Booking, error) {
	if err := s.userExists(ctx, userID); err != nil {
		return model.Booking{}, err
	}
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			s.log.Warn("booking not found", zap.Int64("bookingId", bookingID))
			return model.Booking{}, errors.Wrapf(errs.ErrNotFound, "booking id=%d", bookingID)
		}
		return model.Booking{}, err
	}
	item, err := s.items.GetByID(ctx, booking.ItemID)
	if err != nil {
		return model.Booking{}, err
	}
	if booking.BookerID != userID && item.OwnerID != userID {
		s.log.Warn("booking is visible only to the booker or the item owner",
			zap.Int64("bookingId", bookingID), zap.Int64("userId", userID))
		return model.Booking{}, errors.Wrapf(errs.ErrForbidden, "booking id=%d", bookingID)
	}
	return booking, nil
}

func (s *Service) ListByBooker(ctx context.Context, bookerID int64, state string) ([]model.Booking, error) {
	if err := s.userExists(ctx, bookerID); err != nil {
		return nil, err
	}
	bookings, err := s.repo.ListByBooker(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	return s.filterByState(bookings, state)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64, state string) ([]model.Booking, error) {
	if err := s.userExists(ctx, ownerID); err != nil {
		return nil, err
	}
	bookings, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.filterByState(bookings, state)
}

// filterByState narrows bookings already sorted by start date descending.
// Time-based states are evaluated against the clock at call time.
func (s *Service) filterByState(bookings []model.Booking, state string) ([]model.Booking, error) {
	st, err := model.ParseBookingState(state)
	if err != nil {
		s.log.Warn("unsupported booking state", zap.String("state", state))
		return nil, err
	}

	var keep func(model.Booking) bool
	switch st {
	case model.StateAll:
		return bookings, nil
	case model.StateCurrent:
		keep = func(b model.Booking) bool {
			return b.StartDate.Before(s.clk.Now()) && b.EndDate.After(s.clk.Now())
		}
	case model.StatePast:
		keep = func(b model.Booking) bool { return b.EndDate.Before(s.clk.Now()) }
	case model.StateFuture:
		keep = func(b model.Booking) bool { return b.StartDate.After(s.clk.Now()) }
	case model.StateWaiting:
		keep = func(b model.Booking) bool { return b.Status == model.StatusWaiting }
	case model.StateRejected:
		keep = func(b model.Booking) bool { return b.Status == model.StatusRejected }
	default:
		return nil, errs.ErrUnsupportedState
	}

	filtered := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if keep(b) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (s *Service) userExists(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Warn("user not found", zap.Int64("userId", userID))
		return errors.Wrapf(errs.ErrNotFound, "user id=%d", userID)
	}
	return nil
}

func (s *Service) emit(eventType kafka.EventType, b model.Booking) {
	if s.events == nil {
		return
	}
	event := kafka.EventBooking{
		EventID:   uuid.NewString(),
		Timestamp: s.clk.Now(),
		BookingID: b.ID,
		ItemID:    b.ItemID,
		UserID:    b.BookerID,
		EventType: eventType,
		Status:    string(b.Status),
	}
	if err := s.events.Log(event); err != nil {
		s.log.Warn("booking event log", zap.Error(err))
	}
}
