package replay

import (
	"context"

	"shipment-service/pkg/logger"
)

type Result struct {
	Sent   int
	Failed int
}

// Replay отправляет события по порядку. Ошибка одного события логируется
// и не останавливает остальные, отмена ctx останавливает цикл.
func Replay(ctx context.Context, log handlerLogger, messages []Message, publisher Publisher) Result {
	var res Result

	for i, msg := range messages {
		if ctx.Err() != nil {
			log.With(
				logger.NewField("remaining", len(messages)-i),
			).Warn("replay cancelled")
			break
		}

		err := publisher.Publish(ctx, msg)
		if err != nil {
			res.Failed++
			log.With(
				logger.NewField("index", i),
				logger.NewField("type", msg.Type),
				logger.NewField("key", msg.Key),
				logger.NewField("error", err),
			).Error("failed to send message")
			continue
		}
		res.Sent++
	}

	log.With(
		logger.NewField("sent", res.Sent),
		logger.NewField("failed", res.Failed),
	).Info("replay finished")
	return res
}
