//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"haven/internal/gateway/http/notifier"
	"haven/internal/gateway/kafka/events"
	"haven/internal/handlers/rest/order_delete"
	"haven/internal/handlers/rest/order_get"
	"haven/internal/handlers/rest/order_post"
	"haven/internal/handlers/rest/order_status_put"
	"haven/internal/handlers/rest/orders_by_customer_get"
	"haven/internal/handlers/rest/orders_by_shop_get"
	"haven/internal/handlers/rest/owner_summary_get"
	"haven/internal/handlers/tasks/stale_pending"
	"haven/internal/pkg/config"
	"haven/internal/pkg/factory/delivery_time"

	orderRepo "haven/internal/repository/order"
	orderFileRepo "haven/internal/repository/orderfile"
	shopRepo "haven/internal/repository/shop"
	shopFileRepo "haven/internal/repository/shopfile"
	orderService "haven/internal/service/order"
	shopService "haven/internal/service/shop"
	summaryService "haven/internal/service/summary"

	"haven/pkg/background"
	"haven/pkg/logger"
	"haven/pkg/querier"
	"haven/pkg/tx"
)

type (
	StalePendingInterval time.Duration
	StalePendingAfter    time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceShop       ServiceShop
	ServiceSummary    ServiceSummary
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_status_put.OrderService
	order_delete.OrderService
	orders_by_shop_get.Service
	orders_by_customer_get.Service
}

type ServiceShop interface {
	order_status_put.ShopService
	order_delete.ShopService
}

type ServiceSummary interface {
	owner_summary_get.Service
}

// InitializeApplication для HTTP сервиса с postgres-хранилищем (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStalePendingInterval,
		provideStalePendingAfter,

		provideOrderRepository,
		provideShopRepository,

		delivery_time.New,
		provideEventPublisher,

		provideServiceOrder,
		provideServiceShop,
		provideServiceSummary,

		provideStalePendingTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceShop), new(*shopService.Shop)),
		wire.Bind(new(ServiceSummary), new(*summaryService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DeliveryTimeFactory), new(*delivery_time.DeliveryTimeFactory)),
		wire.Bind(new(orderService.EventPublisher), new(*events.Publisher)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(shopService.Repository), new(*shopRepo.Repository)),

		wire.Bind(new(summaryService.ShopRepository), new(*shopRepo.Repository)),
		wire.Bind(new(summaryService.OrderRepository), new(*orderRepo.Repository)),

		wire.Bind(new(stale_pending.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

// InitializeFileApplication для HTTP сервиса с файловым хранилищем (cmd/service, STORAGE_BACKEND=file)
func InitializeFileApplication(
	ctx context.Context,
	log logger.Logger,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideNoopTxManager,
		provideStalePendingInterval,
		provideStalePendingAfter,

		provideOrderFileRepository,
		provideShopFileRepository,

		delivery_time.New,
		provideEventPublisher,

		provideServiceOrder,
		provideServiceShop,
		provideServiceSummary,

		provideStalePendingTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceShop), new(*shopService.Shop)),
		wire.Bind(new(ServiceSummary), new(*summaryService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderFileRepo.Repository)),
		wire.Bind(new(orderService.DeliveryTimeFactory), new(*delivery_time.DeliveryTimeFactory)),
		wire.Bind(new(orderService.EventPublisher), new(*events.Publisher)),
		wire.Bind(new(orderService.TxManager), new(*tx.Noop)),

		wire.Bind(new(shopService.Repository), new(*shopFileRepo.Repository)),

		wire.Bind(new(summaryService.ShopRepository), new(*shopFileRepo.Repository)),
		wire.Bind(new(summaryService.OrderRepository), new(*orderFileRepo.Repository)),

		wire.Bind(new(stale_pending.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	Notifier *notifier.NotifierGateway
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	log logger.Logger,
	client *http.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideNotifierGateway,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideNoopTxManager() *tx.Noop {
	return tx.NewNoop()
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideShopRepository(querier *querier.Querier) *shopRepo.Repository {
	return shopRepo.New(querier)
}

func provideOrderFileRepository(cfg *config.Config) *orderFileRepo.Repository {
	return orderFileRepo.New(cfg.Storage.OrdersFile)
}

func provideShopFileRepository(cfg *config.Config) *shopFileRepo.Repository {
	return shopFileRepo.New(cfg.Storage.ShopsFile)
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) *events.Publisher {
	return events.New(producer, cfg.Kafka.Topic)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	timeFactory orderService.DeliveryTimeFactory,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(log, repository, timeFactory, publisher, txManager)
}

func provideServiceShop(repository shopService.Repository) *shopService.Shop {
	return shopService.New(repository)
}

func provideServiceSummary(
	log logger.Logger,
	shops summaryService.ShopRepository,
	orders summaryService.OrderRepository,
) *summaryService.Service {
	return summaryService.New(log, shops, orders)
}

func provideStalePendingInterval(cfg *config.Config) StalePendingInterval {
	return StalePendingInterval(cfg.Tasks.StalePendingInterval)
}

func provideStalePendingAfter(cfg *config.Config) StalePendingAfter {
	return StalePendingAfter(cfg.Tasks.StalePendingAfter)
}

func provideStalePendingTask(
	log logger.Logger,
	orderService stale_pending.Service,
	interval StalePendingInterval,
	after StalePendingAfter,
) *stale_pending.StalePending {
	return stale_pending.NewStalePending(log, orderService, time.Duration(interval), time.Duration(after))
}

func provideTaskList(
	stalePendingTask *stale_pending.StalePending,
) []background.Task {
	return []background.Task{
		stalePendingTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideNotifierGateway(client *http.Client, cfg *config.Config) *notifier.NotifierGateway {
	return notifier.New(client, cfg.Notifier.BaseURL)
}
