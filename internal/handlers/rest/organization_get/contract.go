//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=organization_get_test
package organization_get

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
	GetOrganization(ctx context.Context, id string) (*entities.Organization, error)
}
