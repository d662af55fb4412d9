package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

const (
	BookingTopic       = "booking-events"
	StatsConsumerGroup = "rental-stats"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

type EventType string

const (
	EventBookingCreated  EventType = "BOOKING_CREATED"
	EventBookingApproved EventType = "BOOKING_APPROVED"
	EventBookingRejected EventType = "BOOKING_REJECTED"
)

// EventBooking is the audit record produced on every booking state change.
type EventBooking struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	BookingID int64     `json:"bookingId"`
	ItemID    int64     `json:"itemId"`
	UserID    int64     `json:"userId"`
	EventType EventType `json:"eventType"`
	Status    string    `json:"status"`
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Successes = false
	defaultCfg.Producer.Return.Errors = false

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer group session loop until ctx is canceled.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topics ...string) error {
	for {
		if err := consumer.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return errors.Wrap(err, "consumer.Consume")
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func CreateTopics(cfg Config) error {
	admin, err := sarama.NewClusterAdmin(cfg.Addrs, sarama.NewConfig())
	if err != nil {
		return errors.Wrap(err, "sarama.NewClusterAdmin")
	}
	defer admin.Close() //nolint:errcheck

	for _, topic := range []string{BookingTopic} {
		err := admin.CreateTopic(topic, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		}, false)
		var topicErr *sarama.TopicError
		if err != nil && !(errors.As(err, &topicErr) && topicErr.Err == sarama.ErrTopicAlreadyExists) {
			return errors.Wrapf(err, "create topic %s", topic)
		}
	}
	return nil
}
