//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=organization_post_test
package organization_post

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
	UpsertOrganization(ctx context.Context, organizationModify entities.OrganizationModify) (*entities.Organization, error)
}
