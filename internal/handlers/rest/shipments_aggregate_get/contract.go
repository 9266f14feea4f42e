//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipments_aggregate_get_test
package shipments_aggregate_get

import (
	"context"

	"shipment-service/internal/entities"
	"shipment-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AggregateWeight(ctx context.Context, unit string) (*entities.WeightTotal, error)
}
