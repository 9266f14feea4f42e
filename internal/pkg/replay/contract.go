//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=replay_test
package replay

import (
	"context"

	"shipment-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Publisher доставляет одно событие получателю.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// Sender публикация в топик, реализуется kafka.Producer.
type Sender interface {
	Send(ctx context.Context, key string, value []byte) error
}
