//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_post_test
package shipment_post

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
	UpsertShipment(ctx context.Context, shipmentUpsert entities.ShipmentUpsert) (*entities.Shipment, error)
}
