package organization_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"shipment-service/internal/dto"
	"shipment-service/internal/handlers/rest/reply"
	"shipment-service/internal/service/organization"
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
	var organizationDTO dto.OrganizationRequest
	err := json.NewDecoder(r.Body).Decode(&organizationDTO)
	if err != nil {
		reply.Error(w, h.log, http.StatusBadRequest, reply.MessageInvalidBody)
		return
	}

	org, err := h.service.UpsertOrganization(r.Context(), organizationDTO.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, organization.ErrMissingID):
			reply.Error(w, h.log, http.StatusBadRequest, "`id` field is required")
		case errors.Is(err, organization.ErrMissingCode):
			reply.Error(w, h.log, http.StatusBadRequest, "`code` field is required")
		default:
			reply.Unexpected(w, r, h.log, err)
		}
		return
	}

	reply.JSON(w, h.log, http.StatusOK, dto.NewOrganizationResponse(org))
}
