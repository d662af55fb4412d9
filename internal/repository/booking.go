package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/internal/errs"
	"github.com/Astemirdum/rental-service/internal/model"
)

type bookingRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewBookingRepository(db *pgxpool.Pool, log *zap.Logger) (*bookingRepository, error) {
	return &bookingRepository{
		db:  db,
		log: log.Named("booking-repo"),
	}, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking model.Booking) (model.Booking, error) {
	query, args, err := qb.Insert(bookingsTableName).
		Columns("start_date", "end_date", "item_id", "booker_id", "status").
		Values(booking.StartDate, booking.EndDate, booking.ItemID, booking.BookerID, booking.Status).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Booking{}, err
	}
	defer rows.Close()

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
	if err != nil {
		r.log.Error("CreateBooking", zap.String("q", query), zap.Any("args", args))
		return model.Booking{}, err
	}

	return created, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, bookingID int64) (model.Booking, error) {
	query, args, err := qb.Select("id", "start_date", "end_date", "item_id", "booker_id", "status").
		From(bookingsTableName).
		Where(sq.Eq{"id": bookingID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Booking{}, err
	}
	defer rows.Close()

	booking, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}

	return booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status model.BookingStatus) (model.Booking, error) {
	q := `
update bookings
    set status = @status
where id = @id
returning id, start_date, end_date, item_id, booker_id, status`
	args := pgx.NamedArgs{
		"status": status,
		"id":     bookingID,
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return model.Booking{}, err
	}
	defer rows.Close()

	booking, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}

	return booking, nil
}

// ListActiveByItem returns bookings of the item whose date window contains
// the database clock's now. Callers re-check the window against their own
// clock.
func (r *bookingRepository) ListActiveByItem(ctx context.Context, itemID int64) ([]model.Booking, error) {
	q := `
select id, start_date, end_date, item_id, booker_id, status from bookings
where item_id = @item_id and start_date <= now() and end_date >= now()`
	args := pgx.NamedArgs{
		"item_id": itemID,
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int64) ([]model.Booking, error) {
	query, args, err := qb.Select("id", "start_date", "end_date", "item_id", "booker_id", "status").
		From(bookingsTableName).
		Where(sq.Eq{"booker_id": bookerID}).
		OrderBy("start_date desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Booking, error) {
	query, args, err := qb.Select("b.id", "b.start_date", "b.end_date", "b.item_id", "b.booker_id", "b.status").
		From(bookingsTableName + " b").
		Join(fmt.Sprintf("%s i on i.id = b.item_id", itemsTableName)).
		Where(sq.Eq{"i.owner_id": ownerID}).
		OrderBy("b.start_date desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
}
