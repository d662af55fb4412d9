package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/internal/model"
	"github.com/Astemirdum/rental-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.UserRepository
}

func NewService(repo repository.UserRepository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) Create(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	return s.repo.Create(ctx, req)
}

func (s *Service) Get(ctx context.Context, userID int64) (model.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, userID int64, req model.UpdateUserRequest) (model.User, error) {
	if req.Name == nil && req.Email == nil {
		return s.repo.GetByID(ctx, userID)
	}
	return s.repo.Update(ctx, userID, req)
}

func (s *Service) Delete(ctx context.Context, userID int64) error {
	return s.repo.Delete(ctx, userID)
}
