package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/juju/clock"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/rental-service/config"
	"github.com/Astemirdum/rental-service/internal/handler"
	"github.com/Astemirdum/rental-service/internal/repository"
	"github.com/Astemirdum/rental-service/internal/server"
	"github.com/Astemirdum/rental-service/internal/service/booking"
	"github.com/Astemirdum/rental-service/internal/service/item"
	"github.com/Astemirdum/rental-service/internal/service/stats"
	"github.com/Astemirdum/rental-service/internal/service/user"
	"github.com/Astemirdum/rental-service/migrations"
	"github.com/Astemirdum/rental-service/pkg/kafka"
	"github.com/Astemirdum/rental-service/pkg/logger"
	"github.com/Astemirdum/rental-service/pkg/metrics"
	"github.com/Astemirdum/rental-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "rental")

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init: %w", err)
	}

	userRepo, err := repository.NewUserRepository(db, log)
	if err != nil {
		return fmt.Errorf("user repository: %w", err)
	}
	itemRepo, err := repository.NewItemRepository(db, log)
	if err != nil {
		return fmt.Errorf("item repository: %w", err)
	}
	bookingRepo, err := repository.NewBookingRepository(db, log)
	if err != nil {
		return fmt.Errorf("booking repository: %w", err)
	}
	statsRepo, err := repository.NewStatsRepository(db, log)
	if err != nil {
		return fmt.Errorf("stats repository: %w", err)
	}

	if err := kafka.CreateTopics(cfg.Kafka); err != nil {
		log.Error("kafka.CreateTopics", zap.Error(err))
	}
	producer, err := kafka.NewAsyncProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewAsyncProducer: %w", err)
	}
	consumerGroup, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer: %w", err)
	}

	metrics.Register()

	bookingSvc := booking.NewService(bookingRepo, userRepo, itemRepo,
		booking.NewEventLog(producer, kafka.BookingTopic), clock.WallClock, log)
	userSvc := user.NewService(userRepo, log)
	itemSvc := item.NewService(itemRepo, userRepo, log)
	statsSvc := stats.NewService(statsRepo, log)

	h := handler.New(bookingSvc, userSvc, itemSvc, statsSvc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return kafka.Consume(gctx, consumerGroup, handler.NewConsumer(statsSvc.Record, log), kafka.BookingTopic)
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGINT)
	select {
	case termSig := <-sig:
		log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	case <-gctx.Done():
		log.Error("service stopped", zap.Error(gctx.Err()))
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	if err := g.Wait(); err != nil {
		log.Error("g.Wait", zap.Error(err))
	}
	if err := consumerGroup.Close(); err != nil {
		log.Error("consumerGroup.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")

	return nil
}
