package order_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"haven/internal/entities"
	"haven/pkg/logger"
)

type Handler struct {
	notifier                 Notifier
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notifier Notifier, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notifier:                 notifier,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно событие заказа.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event orderEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("event", event.Type),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order event processing")

	err = h.notifier.NotifyOrderEvent(ctx, entities.OrderEvent{
		Type:          entities.OrderEventType(event.Type),
		OrderID:       event.OrderID,
		ShopID:        event.ShopID,
		CustomerID:    event.CustomerID,
		CustomerEmail: event.CustomerEmail,
		OldStatus:     event.OldStatus,
		NewStatus:     event.NewStatus,
		OccurredAt:    event.OccurredAt,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order events handler context cancelled, message will be reprocessed")
			return true
		}

		// Диспетчер так и не принял уведомление: оффсет все равно двигаем,
		// бесконечный реплей одного события заблокировал бы партицию.
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order events handler failed to deliver notification")
	}

	sess.MarkMessage(message, "")
	return false
}
