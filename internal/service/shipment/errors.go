package shipment

import "errors"

var (
	ErrMissingReferenceID          = errors.New("missing shipment reference id")
	ErrInvalidEstimatedTimeArrival = errors.New("invalid estimated time arrival")
	ErrInvalidWeight               = errors.New("invalid transport pack weight")
	ErrInvalidUnit                 = errors.New("invalid transport pack unit")
	ErrMissingUnit                 = errors.New("missing aggregation unit")

	ErrShipmentNotFound = errors.New("shipment not found")
)
