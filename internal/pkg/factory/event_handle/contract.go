//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=event_handle_test
package event_handle

import (
	"context"

	"shipment-service/internal/entities"
)

type OrganizationService interface {
	UpsertOrganization(ctx context.Context, organizationModify entities.OrganizationModify) (*entities.Organization, error)
}

type ShipmentService interface {
	UpsertShipment(ctx context.Context, shipmentUpsert entities.ShipmentUpsert) (*entities.Shipment, error)
}
