//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"shipment-service/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
	GetByReferenceID(ctx context.Context, referenceID string) (*entities.Shipment, error)
	ReplaceOrganizations(ctx context.Context, referenceID string, organizationIDs []string) error
}

type OrganizationRepository interface {
	GetByCodes(ctx context.Context, codes []string) ([]entities.Organization, error)
	GetByShipment(ctx context.Context, referenceID string) ([]entities.Organization, error)
}

type TransportPackRepository interface {
	ReplaceForShipment(ctx context.Context, referenceID string, packs []entities.TransportPackModify) ([]entities.TransportPack, error)
	GetByShipment(ctx context.Context, referenceID string) ([]entities.TransportPack, error)
	SumWeightByUnit(ctx context.Context) ([]entities.UnitWeight, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
