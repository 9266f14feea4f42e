package shipment

import "time"

type ShipmentDB struct {
	ReferenceID          string
	EstimatedTimeArrival *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
