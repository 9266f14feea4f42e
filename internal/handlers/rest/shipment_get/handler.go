package shipment_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"shipment-service/internal/dto"
	"shipment-service/internal/handlers/rest/reply"
	"shipment-service/internal/service/shipment"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	referenceID := mux.Vars(r)["referenceId"]

	s, err := h.service.GetShipment(r.Context(), referenceID)
	if err != nil {
		if errors.Is(err, shipment.ErrShipmentNotFound) {
			reply.Error(w, h.log, http.StatusNotFound, "Shipment not found")
			return
		}
		reply.Unexpected(w, r, h.log, err)
		return
	}

	reply.JSON(w, h.log, http.StatusOK, dto.NewShipmentResponse(s))
}
