//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"shipment-service/internal/handlers/rest/organization_get"
	"shipment-service/internal/handlers/rest/organization_post"
	"shipment-service/internal/handlers/rest/shipment_get"
	"shipment-service/internal/handlers/rest/shipment_post"
	"shipment-service/internal/handlers/rest/shipments_aggregate_get"
	"shipment-service/internal/handlers/tasks/weight_totals"
	"shipment-service/internal/pkg/config"
	"shipment-service/internal/pkg/factory/event_handle"
	"shipment-service/internal/pkg/metrics"

	organizationRepo "shipment-service/internal/repository/organization"
	shipmentRepo "shipment-service/internal/repository/shipment"
	transportPackRepo "shipment-service/internal/repository/transport_pack"
	organizationService "shipment-service/internal/service/organization"
	shipmentService "shipment-service/internal/service/shipment"

	"shipment-service/pkg/background"
	"shipment-service/pkg/logger"
	"shipment-service/pkg/querier"
	"shipment-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	WeightTotalsInterval time.Duration
)

type Application struct {
	ServiceOrganization ServiceOrganization
	ServiceShipment     ServiceShipment
	BackgroundWorkers   *background.Worker
}

type ServiceOrganization interface {
	organization_get.Service
	organization_post.Service
}

type ServiceShipment interface {
	shipment_get.Service
	shipment_post.Service
	shipments_aggregate_get.Service
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideOrganizationRepository,
	provideShipmentRepository,
	provideTransportPackRepository,

	provideServiceOrganization,
	provideServiceShipment,

	wire.Bind(new(organizationService.Repository), new(*organizationRepo.Repository)),
	wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
	wire.Bind(new(shipmentService.OrganizationRepository), new(*organizationRepo.Repository)),
	wire.Bind(new(shipmentService.TransportPackRepository), new(*transportPackRepo.Repository)),
	wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		provideWeightTotalsInterval,

		provideWeightTotalsTask,
		metrics.NewSystemCollector,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrganization), new(*organizationService.Organization)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(weight_totals.Service), new(*shipmentService.Shipment)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	EventHandlerFactory *event_handle.EventHandlerFactory
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		provideEventHandlerFactory,

		wire.Bind(new(event_handle.OrganizationService), new(*organizationService.Organization)),
		wire.Bind(new(event_handle.ShipmentService), new(*shipmentService.Shipment)),

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

func provideOrganizationRepository(querier *querier.Querier) *organizationRepo.Repository {
	return organizationRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideTransportPackRepository(querier *querier.Querier) *transportPackRepo.Repository {
	return transportPackRepo.New(querier)
}

func provideServiceOrganization(repository organizationService.Repository) *organizationService.Organization {
	return organizationService.New(repository)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	organizationRepository shipmentService.OrganizationRepository,
	transportPackRepository shipmentService.TransportPackRepository,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(
		repository,
		organizationRepository,
		transportPackRepository,
		txManager,
	)
}

func provideEventHandlerFactory(
	organizationService event_handle.OrganizationService,
	shipmentService event_handle.ShipmentService,
) *event_handle.EventHandlerFactory {
	return event_handle.NewEventHandlerFactory(organizationService, shipmentService)
}

func provideWeightTotalsInterval(cfg *config.Config) WeightTotalsInterval {
	return WeightTotalsInterval(cfg.Tasks.WeightTotalsInterval)
}

func provideWeightTotalsTask(
	service weight_totals.Service,
	interval WeightTotalsInterval,
) *weight_totals.WeightTotals {
	return weight_totals.New(service, time.Duration(interval))
}

func provideTaskList(
	weightTotalsTask *weight_totals.WeightTotals,
	systemCollector *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		weightTotalsTask,
		systemCollector,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
