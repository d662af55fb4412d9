package item

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/internal/errs"
	"github.com/Astemirdum/rental-service/internal/model"
	"github.com/Astemirdum/rental-service/internal/repository"
)

type Service struct {
	log   *zap.Logger
	repo  repository.ItemRepository
	users repository.UserRepository
}

func NewService(repo repository.ItemRepository, users repository.UserRepository, log *zap.Logger) *Service {
	return &Service{
		log:   log,
		repo:  repo,
		users: users,
	}
}

func (s *Service) Create(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error) {
	ok, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return model.Item{}, err
	}
	if !ok {
		s.log.Warn("user not found", zap.Int64("userId", ownerID))
		return model.Item{}, errors.Wrapf(errs.ErrNotFound, "user id=%d", ownerID)
	}
	return s.repo.Create(ctx, req, ownerID)
}

func (s *Service) Get(ctx context.Context, itemID int64) (model.Item, error) {
	return s.repo.GetByID(ctx, itemID)
}

// Update edits an item. Only the item's owner may edit it.
func (s *Service) Update(ctx context.Context, itemID, ownerID int64, req model.UpdateItemRequest) (model.Item, error) {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			s.log.Warn("item not found", zap.Int64("itemId", itemID))
			return model.Item{}, errors.Wrapf(errs.ErrNotFound, "item id=%d", itemID)
		}
		return model.Item{}, err
	}
	if item.OwnerID != ownerID {
		s.log.Warn("only the item owner can edit the item",
			zap.Int64("itemId", itemID), zap.Int64("userId", ownerID))
		return model.Item{}, errors.Wrapf(errs.ErrForbidden, "item id=%d", itemID)
	}
	if req.Name == nil && req.Description == nil && req.Available == nil {
		return item, nil
	}
	return s.repo.Update(ctx, itemID, req)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]model.Item, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
