package organization_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	id := mux.Vars(r)["id"]

	org, err := h.service.GetOrganization(r.Context(), id)
	if err != nil {
		if errors.Is(err, organization.ErrOrganizationNotFound) {
			reply.Error(w, h.log, http.StatusNotFound, "Organization not found")
			return
		}
		reply.Unexpected(w, r, h.log, err)
		return
	}

	reply.JSON(w, h.log, http.StatusOK, dto.NewOrganizationResponse(org))
}
