package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"shipment-service/internal/dto"
	"shipment-service/internal/pkg/factory/event_handle"
	"shipment-service/internal/service/organization"
	"shipment-service/internal/service/shipment"
	"shipment-service/pkg/logger"
)

type Handler struct {
	factory                  HandlerFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, factory HandlerFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		factory:                  factory,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать:
// сообщение при этом не коммитится и будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := h.processingContext(sess.Context())
	defer cancel()

	var event dto.Event
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("type", event.Type),
		logger.NewField("key", string(message.Key)),
		logger.NewField("offset", message.Offset),
	)

	execute, err := h.factory.GetHandler(event.Type)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("events handler skipped message")
		sess.MarkMessage(message, "")
		return false
	}

	key, err := execute(ctx, message.Value)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, event_handle.ErrBadPayload):
			msgLog.With(
				logger.NewField("error", err),
			).Error("events handler received bad message")

		case isValidationError(err):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("events handler rejected message")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("events handler failed to process message")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("entity", key),
	).Info("events: processed")

	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) processingContext(parent context.Context) (context.Context, context.CancelFunc) {
	if h.messageProcessingTimeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, h.messageProcessingTimeout)
}

func isValidationError(err error) bool {
	for _, target := range []error{
		organization.ErrMissingID,
		organization.ErrMissingCode,
		shipment.ErrMissingReferenceID,
		shipment.ErrInvalidEstimatedTimeArrival,
		shipment.ErrInvalidWeight,
		shipment.ErrInvalidUnit,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
