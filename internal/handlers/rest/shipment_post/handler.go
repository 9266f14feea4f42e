package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"shipment-service/internal/dto"
	"shipment-service/internal/handlers/rest/reply"
	"shipment-service/internal/service/shipment"
	"shipment-service/pkg/massunit"
)

const (
	messageMissingReferenceID = "`referenceId` field is required"
	messageInvalidWeight      = "`weight` field must be numeric"
	messageInvalidETA         = "`estimatedTimeArrival` field must be an ISO-8601 timestamp"
)

var messageInvalidUnit = "`unit` field must be one of " + strings.Join(massunit.Supported(), ", ")

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
	var shipmentDTO dto.ShipmentRequest
	err := json.NewDecoder(r.Body).Decode(&shipmentDTO)
	if err != nil {
		if errors.Is(err, dto.ErrWeightNotNumeric) {
			reply.Error(w, h.log, http.StatusBadRequest, messageInvalidWeight)
			return
		}
		reply.Error(w, h.log, http.StatusBadRequest, reply.MessageInvalidBody)
		return
	}

	s, err := h.service.UpsertShipment(r.Context(), shipmentDTO.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingReferenceID):
			reply.Error(w, h.log, http.StatusBadRequest, messageMissingReferenceID)
		case errors.Is(err, shipment.ErrInvalidWeight):
			reply.Error(w, h.log, http.StatusBadRequest, messageInvalidWeight)
		case errors.Is(err, shipment.ErrInvalidUnit):
			reply.Error(w, h.log, http.StatusBadRequest, messageInvalidUnit)
		case errors.Is(err, shipment.ErrInvalidEstimatedTimeArrival):
			reply.Error(w, h.log, http.StatusBadRequest, messageInvalidETA)
		default:
			reply.Unexpected(w, r, h.log, err)
		}
		return
	}

	reply.JSON(w, h.log, http.StatusOK, dto.NewShipmentResponse(s))
}
