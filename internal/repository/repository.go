package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/rental-service/internal/model"
	"github.com/Astemirdum/rental-service/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type UserRepository interface {
	Exists(ctx context.Context, userID int64) (bool, error)
	GetByID(ctx context.Context, userID int64) (model.User, error)
	Create(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	Update(ctx context.Context, userID int64, req model.UpdateUserRequest) (model.User, error)
	Delete(ctx context.Context, userID int64) error
	List(ctx context.Context) ([]model.User, error)
}

type ItemRepository interface {
	GetByID(ctx context.Context, itemID int64) (model.Item, error)
	Create(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error)
	Update(ctx context.Context, itemID int64, req model.UpdateItemRequest) (model.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking model.Booking) (model.Booking, error)
	GetByID(ctx context.Context, bookingID int64) (model.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status model.BookingStatus) (model.Booking, error)
	ListActiveByItem(ctx context.Context, itemID int64) ([]model.Booking, error)
	ListByBooker(ctx context.Context, bookerID int64) ([]model.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Booking, error)
}

type StatsRepository interface {
	Insert(ctx context.Context, event kafka.EventBooking) error
	GetStats(ctx context.Context) (model.StatsInfo, error)
}

const (
	usersTableName         = `users`
	itemsTableName         = `items`
	bookingsTableName      = `bookings`
	bookingEventsTableName = `booking_events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
