//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_test
package events

import (
	"shipment-service/internal/pkg/factory/event_handle"
	"shipment-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type HandlerFactory interface {
	GetHandler(eventType string) (event_handle.ExecuteFn, error)
}
