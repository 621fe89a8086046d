package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"haven/internal/entities"
	"haven/pkg/logger"
)

type Service struct {
	repository  Repository
	timeFactory DeliveryTimeFactory
	publisher   EventPublisher
	txManager   TxManager
	log         serviceLogger
}

func New(
	log serviceLogger,
	repository Repository,
	timeFactory DeliveryTimeFactory,
	publisher EventPublisher,
	txManager TxManager,
) *Service {
	return &Service{
		repository:  repository,
		timeFactory: timeFactory,
		publisher:   publisher,
		txManager:   txManager,
		log:         log.With(),
	}
}

const guestEmailPlaceholder = "guest@hidden-haven.local"

// CreateOrder оформляет заказ из чекаута. История статусов заполняется сразу
// записью pending, старый бэкенд делал это лениво при первом обновлении.
// Сумма заказа с позициями не сверяется.
func (s *Service) CreateOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	if strings.TrimSpace(draft.ShopID) == "" {
		return nil, fmt.Errorf("shop id: %w", ErrMissingRequiredFields)
	}
	if !isValidItems(draft.Items) {
		return nil, ErrInvalidItems
	}
	if draft.Total < 0 {
		return nil, ErrInvalidTotal
	}
	if !isValidPayment(draft.PaymentMethod) {
		return nil, ErrInvalidPayment
	}
	if !isValidDelivery(draft.DeliveryOpt) {
		return nil, ErrInvalidDelivery
	}

	customerEmail := strings.TrimSpace(draft.CustomerEmail)
	if customerEmail == "" {
		customerEmail = guestEmailPlaceholder
	}

	now := time.Now().UTC()
	orderEntity := entities.Order{
		ID:            uuid.NewString(),
		ShopID:        draft.ShopID,
		CustomerID:    draft.CustomerID,
		CustomerEmail: customerEmail,
		Items:         draft.Items,
		Total:         draft.Total,
		PaymentMethod: draft.PaymentMethod,
		DeliveryOpt:   draft.DeliveryOpt,
		DeliveryCity:  draft.DeliveryCity,
		DeliveryAddr:  draft.DeliveryAddr,
		CryptoWallet:  draft.CryptoWallet,
		Status:        entities.OrderPending,
		StatusHistory: []entities.StatusEntry{
			{Status: entities.OrderPending, Timestamp: now},
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repository.Create(ctx, orderEntity)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publish(ctx, entities.OrderEvent{
		Type:          entities.EventOrderCreated,
		OrderID:       created.ID,
		ShopID:        created.ShopID,
		CustomerID:    created.CustomerID,
		CustomerEmail: created.CustomerEmail,
		NewStatus:     created.Status.String(),
		OccurredAt:    now,
	})

	return created, nil
}

// Transition применяет смену статуса. Кастомный статус побеждает и пишется
// как есть, без проверки по перечислению - продавцы помечают заказы своими
// статусами. Перехода между произвольными статусами из перечисления движок
// тоже не запрещает.
func (s *Service) Transition(ctx context.Context, orderID string, newStatus entities.OrderStatusType, customStatus string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	// Пустота кастомного статуса проверяется по триму, но применяется он
	// без изменений - витрина показывает строку продавца как есть.
	applied := entities.OrderStatusType(customStatus)
	if strings.TrimSpace(customStatus) == "" {
		if !isValidStatus(newStatus) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
		}
		applied = newStatus
	}

	var updated *entities.Order
	var event entities.OrderEvent

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		oldStatus := orderEntity.Status
		now := time.Now().UTC()

		// Бэкфил истории для заказов, импортированных из старого бэкенда.
		if len(orderEntity.StatusHistory) == 0 {
			initial := orderEntity.Status
			if initial == "" {
				initial = entities.OrderPending
			}
			orderEntity.StatusHistory = append(orderEntity.StatusHistory, entities.StatusEntry{
				Status:    initial,
				Timestamp: now,
			})
		}

		orderEntity.StatusHistory = append(orderEntity.StatusHistory, entities.StatusEntry{
			Status:    applied,
			Timestamp: now,
		})
		orderEntity.Status = applied
		orderEntity.UpdatedAt = now

		// deliveryTime выставляется один раз и дальше не пересчитывается.
		if applied == entities.OrderDelivered && orderEntity.DeliveryTime == "" {
			orderEntity.DeliveryTime = s.timeFactory.CalculateDeliveryTime(orderEntity.StatusHistory)
		}

		updated, err = s.repository.Update(ctx, *orderEntity)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		event = entities.OrderEvent{
			Type:          entities.EventStatusChanged,
			OrderID:       updated.ID,
			ShopID:        updated.ShopID,
			CustomerID:    updated.CustomerID,
			CustomerEmail: updated.CustomerEmail,
			OldStatus:     oldStatus.String(),
			NewStatus:     applied.String(),
			OccurredAt:    now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Событие уходит после коммита, чтобы диспетчер не увидел незаписанный статус.
	s.publish(ctx, event)

	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return orderEntity, nil
}

func (s *Service) DeleteOrder(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	err := s.repository.Delete(ctx, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (s *Service) ListByShop(ctx context.Context, shopID string) ([]entities.Order, error) {
	orders, err := s.repository.ListByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("list orders by shop: %w", err)
	}
	return orders, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	orders, err := s.repository.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	return orders, nil
}

// RemindStalePending публикует напоминание по каждому pending-заказу старше
// olderThan. Возвращает число отправленных напоминаний.
func (s *Service) RemindStalePending(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	stale, err := s.repository.ListPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list stale pending orders: %w", err)
	}

	sent := 0
	for _, orderEntity := range stale {
		s.publish(ctx, entities.OrderEvent{
			Type:          entities.EventPendingReminder,
			OrderID:       orderEntity.ID,
			ShopID:        orderEntity.ShopID,
			CustomerID:    orderEntity.CustomerID,
			CustomerEmail: orderEntity.CustomerEmail,
			NewStatus:     orderEntity.Status.String(),
			OccurredAt:    time.Now().UTC(),
		})
		sent++
	}

	return sent, nil
}

// publish не роняет мутацию заказа: доставка уведомлений - забота внешнего
// диспетчера, ошибка публикации только логгируется.
func (s *Service) publish(ctx context.Context, event entities.OrderEvent) {
	if event.OrderID == "" {
		return
	}

	err := s.publisher.Publish(ctx, event)
	if err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("order", event.OrderID),
			logger.NewField("event", event.Type.String()),
		).Warn("failed to publish order event")
	}
}
