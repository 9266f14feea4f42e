package ping_get

import (
	"net/http"

	"shipment-service/internal/dto"
	"shipment-service/internal/handlers/rest/reply"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	reply.JSON(w, h.log, http.StatusOK, dto.PingResponse{Message: "pong"})
}
