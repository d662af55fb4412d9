package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/internal/model"
	"github.com/Astemirdum/rental-service/pkg/kafka"
)

type statsRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewStatsRepository(db *pgxpool.Pool, log *zap.Logger) (*statsRepository, error) {
	return &statsRepository{
		db:  db,
		log: log.Named("stats-repo"),
	}, nil
}

// Insert stores a booking event. Replayed events are dropped by event id.
func (r *statsRepository) Insert(ctx context.Context, event kafka.EventBooking) error {
	q := `
insert into booking_events (event_id, ts, booking_id, item_id, user_id, event_type, status)
values (@event_id, @ts, @booking_id, @item_id, @user_id, @event_type, @status)
on conflict (event_id) do nothing`
	args := pgx.NamedArgs{
		"event_id":   event.EventID,
		"ts":         event.Timestamp,
		"booking_id": event.BookingID,
		"item_id":    event.ItemID,
		"user_id":    event.UserID,
		"event_type": event.EventType,
		"status":     event.Status,
	}
	_, err := r.db.Exec(ctx, q, args)
	return err
}

func (r *statsRepository) GetStats(ctx context.Context) (model.StatsInfo, error) {
	const q = `
	select user_id,
	       coalesce(count(*) filter (where event_type = 'BOOKING_CREATED'), 0) as created,
	       coalesce(count(*) filter (where event_type = 'BOOKING_APPROVED'), 0) as approved,
	       coalesce(count(*) filter (where event_type = 'BOOKING_REJECTED'), 0) as rejected,
	       max(ts) as last_event
	from booking_events
	group by user_id
	order by user_id
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return model.StatsInfo{}, err
	}
	defer rows.Close()

	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Stats])
	if err != nil {
		return model.StatsInfo{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return model.StatsInfo{Data: stats}, nil
}
