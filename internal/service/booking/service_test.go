package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/juju/clock/testclock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/internal/errs"
	"github.com/Astemirdum/rental-service/internal/model"
	mock_repository "github.com/Astemirdum/rental-service/internal/repository/mocks"
	"github.com/Astemirdum/rental-service/internal/service/booking"
	"github.com/Astemirdum/rental-service/pkg/kafka"
)

type eventLogStub struct {
	events []kafka.EventBooking
}

func (l *eventLogStub) Log(event kafka.EventBooking) error {
	l.events = append(l.events, event)
	return nil
}

func (l *eventLogStub) types() []kafka.EventType {
	types := make([]kafka.EventType, 0, len(l.events))
	for _, e := range l.events {
		types = append(types, e.EventType)
	}
	return types
}

type mocks struct {
	repo  *mock_repository.MockBookingRepository
	users *mock_repository.MockUserRepository
	items *mock_repository.MockItemRepository
}

func newMocks(c *gomock.Controller) mocks {
	return mocks{
		repo:  mock_repository.NewMockBookingRepository(c),
		users: mock_repository.NewMockUserRepository(c),
		items: mock_repository.NewMockItemRepository(c),
	}
}

func TestService_CreateBooking(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	drill := model.Item{ID: 7, Name: "Дрель", Description: "Аккумуляторная дрель", Available: true, OwnerID: 2}
	errInternal := errors.New("db internal")

	type input struct {
		req      model.CreateBookingRequest
		bookerID int64
	}
	type mockBehavior func(m mocks, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		want         model.Booking
		wantEvents   []kafka.EventType
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.bookerID).Return(true, nil)
				m.items.EXPECT().GetByID(context.Background(), inp.req.ItemID).Return(drill, nil)
				m.repo.EXPECT().ListActiveByItem(context.Background(), drill.ID).Return(nil, nil)
				m.repo.EXPECT().Create(context.Background(), model.Booking{
					StartDate: inp.req.Start,
					EndDate:   inp.req.End,
					ItemID:    drill.ID,
					BookerID:  inp.bookerID,
					Status:    model.StatusWaiting,
				}).Return(model.Booking{
					ID:        1,
					StartDate: inp.req.Start,
					EndDate:   inp.req.End,
					ItemID:    drill.ID,
					BookerID:  inp.bookerID,
					Status:    model.StatusWaiting,
				}, nil)
			},
			input: input{
				req:      model.CreateBookingRequest{ItemID: 7, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)},
				bookerID: 1,
			},
			want: model.Booking{
				ID:        1,
				StartDate: now.Add(24 * time.Hour),
				EndDate:   now.Add(48 * time.Hour),
				ItemID:    7,
				BookerID:  1,
				Status:    model.StatusWaiting,
			},
			wantEvents: []kafka.EventType{kafka.EventBookingCreated},
		},
		{
			name: "ok. active booking starting exactly now does not block",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.bookerID).Return(true, nil)
				m.items.EXPECT().GetByID(context.Background(), inp.req.ItemID).Return(drill, nil)
				m.repo.EXPECT().ListActiveByItem(context.Background(), drill.ID).Return([]model.Booking{
					{ID: 5, StartDate: now, EndDate: now.Add(time.Hour), ItemID: drill.ID, BookerID: 3, Status: model.StatusApproved},
				}, nil)
				m.repo.EXPECT().Create(context.Background(), gomock.Any()).Return(model.Booking{
					ID:        2,
					StartDate: inp.req.Start,
					EndDate:   inp.req.End,
					ItemID:    drill.ID,
					BookerID:  inp.bookerID,
					Status:    model.StatusWaiting,
				}, nil)
			},
			input: input{
				req:      model.CreateBookingRequest{ItemID: 7, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)},
				bookerID: 1,
			},
			want: model.Booking{
				ID:        2,
				StartDate: now.Add(24 * time.Hour),
				EndDate:   now.Add(48 * time.Hour),
				ItemID:    7,
				BookerID:  1,
				Status:    model.StatusWaiting,
			},
			wantEvents: []kafka.EventType{kafka.EventBookingCreated},
		},
		{
			name: "err. booker not found",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.bookerID).Return(false, nil)
			},
			input: input{
				req:      model.CreateBookingRequest{ItemID: 7, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)},
				bookerID: 99,
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. start equals end",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.bookerID).Return(true, nil)
			},
			input: input{
				req:      model.CreateBookingRequest{ItemID: 7, Start: now.Add(24 * time.Hour), End: now.Add(24 * time.Hour)},
				bookerID: 1,
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "err. start after end",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.bookerID).Return(true, nil)
			},
			input: input{
				req:      model.CreateBookingRequest{ItemID: 7, Start: now.Add(48 * time.Hour), End: now.Add(24 * time.Hour)},
				bookerID: 1,
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "err. item not found",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.bookerID).Return(true, nil)
				m.items.EXPECT().GetByID(context.Background(), inp.req.ItemID).Return(model.Item{}, errs.ErrNotFound)
			},
			input: input{
				req:      model.CreateBookingRequest{ItemID: 44, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)},
				bookerID: 1,
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. owner books own item",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.bookerID).Return(true, nil)
				m.items.EXPECT().GetByID(context.Background(), inp.req.ItemID).Return(drill, nil)
			},
			input: input{
				req:      model.CreateBookingRequest{ItemID: 7, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)},
				bookerID: drill.OwnerID,
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "err. item not available",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.bookerID).Return(true, nil)
				m.items.EXPECT().GetByID(context.Background(), inp.req.ItemID).
					Return(model.Item{ID: 8, Name: "Отвертка", Available: false, OwnerID: 2}, nil)
			},
			input: input{
				req:      model.CreateBookingRequest{ItemID: 8, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)},
				bookerID: 1,
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "err. item already in use",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.bookerID).Return(true, nil)
				m.items.EXPECT().GetByID(context.Background(), inp.req.ItemID).Return(drill, nil)
				m.repo.EXPECT().ListActiveByItem(context.Background(), drill.ID).Return([]model.Booking{
					{ID: 5, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour), ItemID: drill.ID, BookerID: 3, Status: model.StatusApproved},
				}, nil)
			},
			input: input{
				req:      model.CreateBookingRequest{ItemID: 7, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)},
				bookerID: 1,
			},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "err. internal",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.bookerID).Return(true, nil)
				m.items.EXPECT().GetByID(context.Background(), inp.req.ItemID).Return(drill, nil)
				m.repo.EXPECT().ListActiveByItem(context.Background(), drill.ID).Return(nil, errInternal)
			},
			input: input{
				req:      model.CreateBookingRequest{ItemID: 7, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour)},
				bookerID: 1,
			},
			wantErr: errInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			m := newMocks(c)
			events := &eventLogStub{}
			svc := booking.NewService(m.repo, m.users, m.items, events, testclock.NewClock(now), zap.NewExample().Named("test"))

			tt.mockBehavior(m, tt.input)
			got, err := svc.CreateBooking(context.Background(), tt.input.req, tt.input.bookerID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, events.events)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantEvents, events.types())
			ev := events.events[0]
			require.NotEmpty(t, ev.EventID)
			require.Equal(t, now, ev.Timestamp)
			require.Equal(t, got.ID, ev.BookingID)
			require.Equal(t, got.ItemID, ev.ItemID)
			require.Equal(t, got.BookerID, ev.UserID)
			require.Equal(t, string(got.Status), ev.Status)
		})
	}
}

func TestService_ApproveBooking(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	drill := model.Item{ID: 7, Name: "Дрель", Available: true, OwnerID: 2}
	waiting := model.Booking{
		ID:        10,
		StartDate: now.Add(24 * time.Hour),
		EndDate:   now.Add(48 * time.Hour),
		ItemID:    drill.ID,
		BookerID:  1,
		Status:    model.StatusWaiting,
	}

	type input struct {
		bookingID int64
		ownerID   int64
		approved  bool
	}
	type mockBehavior func(m mocks, inp input)

	withStatus := func(b model.Booking, status model.BookingStatus) model.Booking {
		b.Status = status
		return b
	}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		want         model.Booking
		wantEvents   []kafka.EventType
		wantErr      error
	}{
		{
			name: "approved",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.ownerID).Return(true, nil)
				m.repo.EXPECT().GetByID(context.Background(), inp.bookingID).Return(waiting, nil)
				m.items.EXPECT().GetByID(context.Background(), drill.ID).Return(drill, nil)
				m.repo.EXPECT().UpdateStatus(context.Background(), inp.bookingID, model.StatusApproved).
					Return(withStatus(waiting, model.StatusApproved), nil)
			},
			input:      input{bookingID: 10, ownerID: 2, approved: true},
			want:       withStatus(waiting, model.StatusApproved),
			wantEvents: []kafka.EventType{kafka.EventBookingApproved},
		},
		{
			name: "rejected",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.ownerID).Return(true, nil)
				m.repo.EXPECT().GetByID(context.Background(), inp.bookingID).Return(waiting, nil)
				m.items.EXPECT().GetByID(context.Background(), drill.ID).Return(drill, nil)
				m.repo.EXPECT().UpdateStatus(context.Background(), inp.bookingID, model.StatusRejected).
					Return(withStatus(waiting, model.StatusRejected), nil)
			},
			input:      input{bookingID: 10, ownerID: 2, approved: false},
			want:       withStatus(waiting, model.StatusRejected),
			wantEvents: []kafka.EventType{kafka.EventBookingRejected},
		},
		{
			name: "rejected twice",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.ownerID).Return(true, nil)
				m.repo.EXPECT().GetByID(context.Background(), inp.bookingID).
					Return(withStatus(waiting, model.StatusRejected), nil)
				m.items.EXPECT().GetByID(context.Background(), drill.ID).Return(drill, nil)
				m.repo.EXPECT().UpdateStatus(context.Background(), inp.bookingID, model.StatusRejected).
					Return(withStatus(waiting, model.StatusRejected), nil)
			},
			input:      input{bookingID: 10, ownerID: 2, approved: false},
			want:       withStatus(waiting, model.StatusRejected),
			wantEvents: []kafka.EventType{kafka.EventBookingRejected},
		},
		{
			name: "err. already approved",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.ownerID).Return(true, nil)
				m.repo.EXPECT().GetByID(context.Background(), inp.bookingID).
					Return(withStatus(waiting, model.StatusApproved), nil)
				m.items.EXPECT().GetByID(context.Background(), drill.ID).Return(drill, nil)
			},
			input:   input{bookingID: 10, ownerID: 2, approved: true},
			wantErr: errs.ErrInvalidRequest,
		},
		{
			name: "err. not the owner",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.ownerID).Return(true, nil)
				m.repo.EXPECT().GetByID(context.Background(), inp.bookingID).Return(waiting, nil)
				m.items.EXPECT().GetByID(context.Background(), drill.ID).Return(drill, nil)
			},
			input:   input{bookingID: 10, ownerID: 3, approved: true},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "err. booking not found",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.ownerID).Return(true, nil)
				m.repo.EXPECT().GetByID(context.Background(), inp.bookingID).Return(model.Booking{}, errs.ErrNotFound)
			},
			input:   input{bookingID: 44, ownerID: 2, approved: true},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. user not found",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.ownerID).Return(false, nil)
			},
			input:   input{bookingID: 10, ownerID: 99, approved: true},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			m := newMocks(c)
			events := &eventLogStub{}
			svc := booking.NewService(m.repo, m.users, m.items, events, testclock.NewClock(now), zap.NewExample().Named("test"))

			tt.mockBehavior(m, tt.input)
			got, err := svc.ApproveBooking(context.Background(), tt.input.bookingID, tt.input.ownerID, tt.input.approved)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, events.events)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantEvents, events.types())
		})
	}
}

func TestService_GetBooking(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	drill := model.Item{ID: 7, Name: "Дрель", Available: true, OwnerID: 2}
	booked := model.Booking{
		ID:        10,
		StartDate: now.Add(24 * time.Hour),
		EndDate:   now.Add(48 * time.Hour),
		ItemID:    drill.ID,
		BookerID:  1,
		Status:    model.StatusWaiting,
	}

	type input struct {
		bookingID int64
		userID    int64
	}
	type mockBehavior func(m mocks, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		want         model.Booking
		wantErr      error
	}{
		{
			name: "ok. booker",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.userID).Return(true, nil)
				m.repo.EXPECT().GetByID(context.Background(), inp.bookingID).Return(booked, nil)
				m.items.EXPECT().GetByID(context.Background(), drill.ID).Return(drill, nil)
			},
			input: input{bookingID: 10, userID: 1},
			want:  booked,
		},
		{
			name: "ok. item owner",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.userID).Return(true, nil)
				m.repo.EXPECT().GetByID(context.Background(), inp.bookingID).Return(booked, nil)
				m.items.EXPECT().GetByID(context.Background(), drill.ID).Return(drill, nil)
			},
			input: input{bookingID: 10, userID: 2},
			want:  booked,
		},
		{
			name: "err. stranger",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.userID).Return(true, nil)
				m.repo.EXPECT().GetByID(context.Background(), inp.bookingID).Return(booked, nil)
				m.items.EXPECT().GetByID(context.Background(), drill.ID).Return(drill, nil)
			},
			input:   input{bookingID: 10, userID: 3},
			wantErr: errs.ErrForbidden,
		},
		{
			name: "err. booking not found",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.userID).Return(true, nil)
				m.repo.EXPECT().GetByID(context.Background(), inp.bookingID).Return(model.Booking{}, errs.ErrNotFound)
			},
			input:   input{bookingID: 44, userID: 1},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. user not found",
			mockBehavior: func(m mocks, inp input) {
				m.users.EXPECT().Exists(context.Background(), inp.userID).Return(false, nil)
			},
			input:   input{bookingID: 10, userID: 99},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			m := newMocks(c)
			svc := booking.NewService(m.repo, m.users, m.items, nil, testclock.NewClock(now), zap.NewExample().Named("test"))

			tt.mockBehavior(m, tt.input)
			got, err := svc.GetBooking(context.Background(), tt.input.bookingID, tt.input.userID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ListByBooker(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	var (
		future = model.Booking{
			ID: 4, StartDate: now.Add(24 * time.Hour), EndDate: now.Add(48 * time.Hour),
			ItemID: 7, BookerID: 1, Status: model.StatusWaiting,
		}
		rejected = model.Booking{
			ID: 3, StartDate: now.Add(2 * time.Hour), EndDate: now.Add(3 * time.Hour),
			ItemID: 8, BookerID: 1, Status: model.StatusRejected,
		}
		startsNow = model.Booking{
			ID: 5, StartDate: now, EndDate: now.Add(time.Hour),
			ItemID: 9, BookerID: 1, Status: model.StatusApproved,
		}
		current = model.Booking{
			ID: 2, StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour),
			ItemID: 7, BookerID: 1, Status: model.StatusApproved,
		}
		past = model.Booking{
			ID: 1, StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-24 * time.Hour),
			ItemID: 8, BookerID: 1, Status: model.StatusApproved,
		}
	)
	// sorted by start date descending, the repository order
	all := []model.Booking{future, rejected, startsNow, current, past}

	var tests = []struct {
		name    string
		state   string
		want    []model.Booking
		wantErr error
	}{
		{
			name:  "all keeps repository order",
			state: "ALL",
			want:  []model.Booking{future, rejected, startsNow, current, past},
		},
		{
			name:  "current",
			state: "CURRENT",
			want:  []model.Booking{current},
		},
		{
			name:  "past",
			state: "PAST",
			want:  []model.Booking{past},
		},
		{
			name:  "future",
			state: "FUTURE",
			want:  []model.Booking{future, rejected},
		},
		{
			name:  "waiting",
			state: "WAITING",
			want:  []model.Booking{future},
		},
		{
			name:  "rejected",
			state: "REJECTED",
			want:  []model.Booking{rejected},
		},
		{
			name:    "err. unknown state",
			state:   "UNSUPPORTED_STATUS",
			wantErr: errs.ErrUnsupportedState,
		},
		{
			name:    "err. lower case state",
			state:   "all",
			wantErr: errs.ErrUnsupportedState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			m := newMocks(c)
			svc := booking.NewService(m.repo, m.users, m.items, nil, testclock.NewClock(now), zap.NewExample().Named("test"))

			const bookerID int64 = 1
			m.users.EXPECT().Exists(context.Background(), bookerID).Return(true, nil)
			m.repo.EXPECT().ListByBooker(context.Background(), bookerID).Return(all, nil)

			got, err := svc.ListByBooker(context.Background(), bookerID, tt.state)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_ListByBooker_UserNotFound(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	c := gomock.NewController(t)
	defer c.Finish()
	m := newMocks(c)
	svc := booking.NewService(m.repo, m.users, m.items, nil, testclock.NewClock(now), zap.NewExample().Named("test"))

	m.users.EXPECT().Exists(context.Background(), int64(99)).Return(false, nil)

	_, err := svc.ListByBooker(context.Background(), 99, "ALL")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_ListByOwner(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	var (
		waiting = model.Booking{
			ID: 4, StartDate: now.Add(24 * time.Hour), EndDate: now.Add(48 * time.Hour),
			ItemID: 7, BookerID: 1, Status: model.StatusWaiting,
		}
		past = model.Booking{
			ID: 1, StartDate: now.Add(-48 * time.Hour), EndDate: now.Add(-24 * time.Hour),
			ItemID: 7, BookerID: 3, Status: model.StatusApproved,
		}
	)

	var tests = []struct {
		name    string
		state   string
		want    []model.Booking
		wantErr error
	}{
		{
			name:  "all",
			state: "ALL",
			want:  []model.Booking{waiting, past},
		},
		{
			name:  "waiting",
			state: "WAITING",
			want:  []model.Booking{waiting},
		},
		{
			name:    "err. unknown state",
			state:   "BOGUS",
			wantErr: errs.ErrUnsupportedState,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			m := newMocks(c)
			svc := booking.NewService(m.repo, m.users, m.items, nil, testclock.NewClock(now), zap.NewExample().Named("test"))

			const ownerID int64 = 2
			m.users.EXPECT().Exists(context.Background(), ownerID).Return(true, nil)
			m.repo.EXPECT().ListByOwner(context.Background(), ownerID).Return([]model.Booking{waiting, past}, nil)

			got, err := svc.ListByOwner(context.Background(), ownerID, tt.state)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
