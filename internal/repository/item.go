package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/internal/errs"
	"github.com/Astemirdum/rental-service/internal/model"
)

type itemRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewItemRepository(db *pgxpool.Pool, log *zap.Logger) (*itemRepository, error) {
	return &itemRepository{
		db:  db,
		log: log.Named("item-repo"),
	}, nil
}

func (r *itemRepository) GetByID(ctx context.Context, itemID int64) (model.Item, error) {
	query, args, err := qb.Select("id", "name", "description", "available", "owner_id").
		From(itemsTableName).
		Where(sq.Eq{"id": itemID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Item{}, err
	}
	defer rows.Close()

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Item])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, errs.ErrNotFound
		}
		return model.Item{}, err
	}

	return item, nil
}

func (r *itemRepository) Create(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error) {
	query, args, err := qb.Insert(itemsTableName).
		Columns("name", "description", "available", "owner_id").
		Values(req.Name, req.Description, *req.Available, ownerID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Item{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Item{}, err
	}
	defer rows.Close()

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Item])
	if err != nil {
		r.log.Error("CreateItem", zap.String("q", query), zap.Any("args", args))
		return model.Item{}, err
	}

	return item, nil
}

func (r *itemRepository) Update(ctx context.Context, itemID int64, req model.UpdateItemRequest) (model.Item, error) {
	b := qb.Update(itemsTableName).
		Where(sq.Eq{"id": itemID}).
		Suffix("returning *")
	if req.Name != nil {
		b = b.Set("name", *req.Name)
	}
	if req.Description != nil {
		b = b.Set("description", *req.Description)
	}
	if req.Available != nil {
		b = b.Set("available", *req.Available)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.Item{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Item{}, err
	}
	defer rows.Close()

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Item])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, errs.ErrNotFound
		}
		return model.Item{}, err
	}

	return item, nil
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Item, error) {
	query, args, err := qb.Select("id", "name", "description", "available", "owner_id").
		From(itemsTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Item])
}
