//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=organization_test
package organization

import (
	"context"

	"shipment-service/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, organizationModify entities.OrganizationModify) (*entities.Organization, error)
	GetByID(ctx context.Context, id string) (*entities.Organization, error)
}
