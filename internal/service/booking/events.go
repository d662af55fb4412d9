package booking

import (
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/Astemirdum/rental-service/pkg/kafka"
)

type EventLog interface {
	Log(event kafka.EventBooking) error
}

type eventLog struct {
	producer sarama.AsyncProducer
	topic    string
}

func NewEventLog(producer sarama.AsyncProducer, topic string) *eventLog {
	return &eventLog{
		producer: producer,
		topic:    topic,
	}
}

// Log hands the event to the async producer. Delivery is fire-and-forget.
func (l *eventLog) Log(event kafka.EventBooking) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: l.topic, Value: sarama.StringEncoder(data)}
	l.producer.Input() <- msg
	return nil
}
