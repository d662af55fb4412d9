package model

import (
	"time"

	"github.com/Astemirdum/rental-service/internal/errs"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// BookingState is a filter over booking lists, not a stored status.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

func ParseBookingState(s string) (BookingState, error) {
	switch st := BookingState(s); st {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return st, nil
	default:
		return "", errs.ErrUnsupportedState
	}
}

type Booking struct {
	ID        int64         `json:"id" db:"id"`
	StartDate time.Time     `json:"start" db:"start_date"`
	EndDate   time.Time     `json:"end" db:"end_date"`
	ItemID    int64         `json:"itemId" db:"item_id"`
	BookerID  int64         `json:"bookerId" db:"booker_id"`
	Status    BookingStatus `json:"status" db:"status"`
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

type User struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type Item struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Available   bool   `json:"available" db:"available"`
	OwnerID     int64  `json:"ownerId" db:"owner_id"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type Stats struct {
	UserID    int64     `json:"userId" db:"user_id"`
	Created   int64     `json:"created" db:"created"`
	Approved  int64     `json:"approved" db:"approved"`
	Rejected  int64     `json:"rejected" db:"rejected"`
	LastEvent time.Time `json:"lastEvent" db:"last_event"`
}

type StatsInfo struct {
	Data []Stats `json:"data"`
}
