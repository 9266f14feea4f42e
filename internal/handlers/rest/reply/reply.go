package reply

import (
	"encoding/json"
	"net/http"

	"shipment-service/internal/dto"
	"shipment-service/pkg/logger"
)

const (
	MessageUnexpected  = "Unexpected error"
	MessageInvalidBody = "Request body must be valid JSON"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

func JSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Error(w http.ResponseWriter, log handlerLogger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{Message: message})
}

// Unexpected логирует причину и отдает клиенту только общее сообщение.
func Unexpected(w http.ResponseWriter, r *http.Request, log handlerLogger, err error) {
	log.With(
		logger.NewField("error", err),
		logger.NewField("method", r.Method),
		logger.NewField("path", r.URL.Path),
	).Error("unexpected error")

	Error(w, log, http.StatusInternalServerError, MessageUnexpected)
}
