package handler

import (
	"context"

	"github.com/Astemirdum/rental-service/internal/model"
	"github.com/Astemirdum/rental-service/internal/service/booking"
	"github.com/Astemirdum/rental-service/internal/service/item"
	"github.com/Astemirdum/rental-service/internal/service/stats"
	"github.com/Astemirdum/rental-service/internal/service/user"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookingService interface {
	CreateBooking(ctx context.Context, req model.CreateBookingRequest, bookerID int64) (model.Booking, error)
	ApproveBooking(ctx context.Context, bookingID, ownerID int64, approved bool) (model.Booking, error)
	GetBooking(ctx context.Context, bookingID, userID int64) (model.Booking, error)
	ListByBooker(ctx context.Context, bookerID int64, state string) ([]model.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state string) ([]model.Booking, error)
}

type UserService interface {
	Create(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	Get(ctx context.Context, userID int64) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, userID int64, req model.UpdateUserRequest) (model.User, error)
	Delete(ctx context.Context, userID int64) error
}

type ItemService interface {
	Create(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error)
	Get(ctx context.Context, itemID int64) (model.Item, error)
	Update(ctx context.Context, itemID, ownerID int64, req model.UpdateItemRequest) (model.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Item, error)
}

type StatsService interface {
	GetStats(ctx context.Context) (model.StatsInfo, error)
}

var (
	_ BookingService = (*booking.Service)(nil)
	_ UserService    = (*user.Service)(nil)
	_ ItemService    = (*item.Service)(nil)
	_ StatsService   = (*stats.Service)(nil)
)
