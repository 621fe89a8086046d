package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"haven/internal/entities"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Publisher пишет события заказов в kafka. Ключ сообщения — id заказа,
// чтобы события одного заказа попадали в одну партицию и читались по
// порядку.
type Publisher struct {
	producer syncProducer
	topic    string
}

func New(producer syncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	payload, err := json.Marshal(eventJSON{
		Type:          event.Type.String(),
		OrderID:       event.OrderID,
		ShopID:        event.ShopID,
		CustomerID:    event.CustomerID,
		CustomerEmail: event.CustomerEmail,
		OldStatus:     event.OldStatus,
		NewStatus:     event.NewStatus,
		OccurredAt:    event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()
	_, _, err = p.producer.SendMessage(msg)
	PublishDuration.WithLabelValues(p.topic, event.Type.String()).Observe(time.Since(start).Seconds())

	if err != nil {
		PublishedEventsTotal.WithLabelValues(p.topic, event.Type.String(), statusError).Inc()
		return fmt.Errorf("send %s event for order %s: %w", event.Type, event.OrderID, err)
	}

	PublishedEventsTotal.WithLabelValues(p.topic, event.Type.String(), statusOK).Inc()
	return nil
}
