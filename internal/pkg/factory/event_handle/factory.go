package event_handle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shipment-service/internal/dto"
)

var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrBadPayload       = errors.New("bad event payload")
)

// ExecuteFn применяет тело события и возвращает ключ сохраненной сущности.
type ExecuteFn func(ctx context.Context, payload []byte) (string, error)

type EventHandlerFactory struct {
	organizationService OrganizationService
	shipmentService     ShipmentService
}

func NewEventHandlerFactory(organizationService OrganizationService, shipmentService ShipmentService) *EventHandlerFactory {
	return &EventHandlerFactory{
		organizationService: organizationService,
		shipmentService:     shipmentService,
	}
}

func (f *EventHandlerFactory) GetHandler(eventType string) (ExecuteFn, error) {
	switch eventType {
	case dto.TypeOrganization:
		return f.organizationHandler, nil
	case dto.TypeShipment:
		return f.shipmentHandler, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, eventType)
	}
}

func (f *EventHandlerFactory) organizationHandler(ctx context.Context, payload []byte) (string, error) {
	var req dto.OrganizationRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadPayload, err)
	}

	org, err := f.organizationService.UpsertOrganization(ctx, req.ToDomain())
	if err != nil {
		return "", fmt.Errorf("upsert organization: %w", err)
	}
	return org.ID, nil
}

func (f *EventHandlerFactory) shipmentHandler(ctx context.Context, payload []byte) (string, error) {
	var req dto.ShipmentRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBadPayload, err)
	}

	s, err := f.shipmentService.UpsertShipment(ctx, req.ToDomain())
	if err != nil {
		return "", fmt.Errorf("upsert shipment: %w", err)
	}
	return s.ReferenceID, nil
}
