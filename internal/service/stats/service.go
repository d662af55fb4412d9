package stats

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/rental-service/internal/model"
	"github.com/Astemirdum/rental-service/internal/repository"
	"github.com/Astemirdum/rental-service/pkg/kafka"
)

type Service struct {
	log  *zap.Logger
	repo repository.StatsRepository
}

func NewService(repo repository.StatsRepository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

// GetStats returns booking event aggregates per user.
func (s *Service) GetStats(ctx context.Context) (model.StatsInfo, error) {
	return s.repo.GetStats(ctx)
}

// Record is used by the kafka consumer.
func (s *Service) Record(ctx context.Context, event kafka.EventBooking) error {
	return s.repo.Insert(ctx, event)
}
