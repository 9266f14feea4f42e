package shipments_aggregate_get

import (
	"errors"
	"net/http"

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
	unit := r.URL.Query().Get("unit")

	total, err := h.service.AggregateWeight(r.Context(), unit)
	if err != nil {
		if errors.Is(err, shipment.ErrMissingUnit) {
			reply.Error(w, h.log, http.StatusBadRequest, "`unit` query param is required")
			return
		}
		reply.Unexpected(w, r, h.log, err)
		return
	}

	reply.JSON(w, h.log, http.StatusOK, dto.NewWeightTotalResponse(total))
}
