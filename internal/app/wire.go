//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	address_delete "delivery/internal/handlers/rest/address_delete"
	address_post "delivery/internal/handlers/rest/address_post"
	order_post "delivery/internal/handlers/rest/order_post"
	orders_received_get "delivery/internal/handlers/rest/orders_received_get"
	orders_sent_get "delivery/internal/handlers/rest/orders_sent_get"
	user_get "delivery/internal/handlers/rest/user_get"
	user_put "delivery/internal/handlers/rest/user_put"
	"delivery/internal/handlers/tasks/pool_stats"
	"delivery/internal/pkg/config"
	"delivery/internal/pkg/factory/status_handle"

	addressRepo "delivery/internal/repository/address"
	orderRepo "delivery/internal/repository/order"
	userRepo "delivery/internal/repository/user"
	orderService "delivery/internal/service/order"
	userService "delivery/internal/service/user"

	"delivery/pkg/background"
	"delivery/pkg/logger"
	"delivery/pkg/querier"
	"delivery/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	PoolStatsInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceUser       ServiceUser
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	orders_sent_get.Service
	orders_received_get.Service
}

type ServiceUser interface {
	user_get.Service
	user_put.Service
	address_post.Service
	address_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		providePoolStatsInterval,

		provideOrderRepository,
		provideUserRepository,
		provideAddressRepository,

		provideServiceOrder,
		provideServiceUser,

		providePoolStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceUser), new(*userService.User)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.AddressChecker), new(*addressRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(userService.AddressRepository), new(*addressRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(userService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	StatusHandlers *status_handle.StatusHandlerFactory
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideAddressRepository,

		provideServiceOrder,
		provideStatusHandlerFactory,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.AddressChecker), new(*addressRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideAddressRepository(querier *querier.Querier) *addressRepo.Repository {
	return addressRepo.New(querier)
}

func provideServiceOrder(
	repository orderService.Repository,
	addresses orderService.AddressChecker,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, addresses, txManager)
}

func provideServiceUser(
	repository userService.Repository,
	addresses userService.AddressRepository,
	txManager userService.TxManager,
) *userService.User {
	return userService.New(repository, addresses, txManager)
}

func providePoolStatsInterval(cfg *config.Config) PoolStatsInterval {
	return PoolStatsInterval(cfg.Tasks.PoolStatsInterval)
}

func provideStatusHandlerFactory(orderService *orderService.Order) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(orderService)
}

func providePoolStatsTask(
	log logger.Logger,
	pool *pgxpool.Pool,
	interval PoolStatsInterval,
) *pool_stats.PoolStats {
	return pool_stats.NewPoolStats(log, pool, time.Duration(interval))
}

func provideTaskList(
	poolStatsTask *pool_stats.PoolStats,
) []background.Task {
	return []background.Task{
		poolStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
