package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"haven/internal/entities"
	retrierconfig "haven/pkg/retrier"
	"haven/pkg/retrier/backoff_adapter"
)

const notificationsPath = "/api/notifications/order"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type httpStatusError struct {
	code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("notifier responded %d", e.code)
}

// NotifierGateway доставляет события заказов в сервис уведомлений по HTTP.
type NotifierGateway struct {
	client  httpClient
	baseURL string
	retrier retrier
}

func New(client httpClient, baseURL string) *NotifierGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &NotifierGateway{
		client:  client,
		baseURL: baseURL,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *NotifierGateway) NotifyOrderEvent(ctx context.Context, event entities.OrderEvent) error {
	payload, err := json.Marshal(notificationJSON{
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
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = g.executeWithMetrics(ctx, http.MethodPost, func(ctx context.Context) error {
		return g.post(ctx, payload)
	})
	if err != nil {
		return fmt.Errorf("gateway notifier, order %s: %w", event.OrderID, err)
	}
	return nil
}

func (g *NotifierGateway) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+notificationsPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	// Тело не нужно, но дочитываем чтобы соединение вернулось в пул
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return &httpStatusError{code: resp.StatusCode}
	}
	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= http.StatusInternalServerError
	}

	// Сетевые ошибки транспорта ретраим, отмену контекста нет
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (g *NotifierGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(method, code).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return strconv.Itoa(http.StatusOK)
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "transport_error"
}
