package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/internal/errs"
	"github.com/Astemirdum/rental-service/internal/model"
)

type userRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewUserRepository(db *pgxpool.Pool, log *zap.Logger) (*userRepository, error) {
	return &userRepository{
		db:  db,
		log: log.Named("user-repo"),
	}, nil
}

func (r *userRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	q := `select exists (select 1 from users where id = @id)`
	args := pgx.NamedArgs{
		"id": userID,
	}
	var ok bool
	if err := r.db.QueryRow(ctx, q, args).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID int64) (model.User, error) {
	query, args, err := qb.Select("id", "name", "email").
		From(usersTableName).
		Where(sq.Eq{"id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}

	return user, nil
}

func (r *userRepository) Create(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("name", "email").
		Values(req.Name, req.Email).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		r.log.Error("CreateUser", zap.String("q", query), zap.Any("args", args))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrConflict
		}
		return model.User{}, err
	}

	return user, nil
}

func (r *userRepository) Update(ctx context.Context, userID int64, req model.UpdateUserRequest) (model.User, error) {
	b := qb.Update(usersTableName).
		Where(sq.Eq{"id": userID}).
		Suffix("returning *")
	if req.Name != nil {
		b = b.Set("name", *req.Name)
	}
	if req.Email != nil {
		b = b.Set("email", *req.Email)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.User{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrConflict
		}
		return model.User{}, err
	}

	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, userID int64) error {
	query, args, err := qb.Delete(usersTableName).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	query, args, err := qb.Select("id", "name", "email").
		From(usersTableName).
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

	return pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
}
