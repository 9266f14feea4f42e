package dto

import (
	"strconv"
	"time"

	"shipment-service/internal/entities"
)

// etaLayout ISO-8601 в UTC с миллисекундами.
const etaLayout = "2006-01-02T15:04:05.000Z"

func (r OrganizationRequest) ToDomain() entities.OrganizationModify {
	return entities.OrganizationModify{
		ID:   r.ID,
		Code: r.Code,
	}
}

func (r ShipmentRequest) ToDomain() entities.ShipmentUpsert {
	upsert := entities.ShipmentUpsert{
		ReferenceID:          r.ReferenceID,
		OrganizationCodes:    r.Organizations,
		EstimatedTimeArrival: r.EstimatedTimeArrival,
		TransportPacks:       []entities.TransportPackInput{},
	}

	if r.TransportPacks != nil {
		for _, node := range r.TransportPacks.Nodes {
			upsert.TransportPacks = append(upsert.TransportPacks, entities.TransportPackInput{
				Weight: node.TotalWeight.Weight.String(),
				Unit:   node.TotalWeight.Unit,
			})
		}
	}
	return upsert
}

func NewOrganizationResponse(o *entities.Organization) OrganizationResponse {
	return OrganizationResponse{
		Type: TypeOrganization,
		ID:   o.ID,
		Code: o.Code,
	}
}

func NewShipmentResponse(s *entities.Shipment) ShipmentResponse {
	res := ShipmentResponse{
		Type:          TypeShipment,
		ReferenceID:   s.ReferenceID,
		Organizations: make([]OrganizationResponse, len(s.Organizations)),
		TransportPacks: TransportPacksResponse{
			Node: make([]TransportPackResponse, len(s.TransportPacks)),
		},
	}

	for i := range s.Organizations {
		res.Organizations[i] = NewOrganizationResponse(&s.Organizations[i])
	}

	for i, p := range s.TransportPacks {
		res.TransportPacks.Node[i] = TransportPackResponse{
			TotalWeight: TotalWeightResponse{
				Unit:   p.Unit.String(),
				Weight: strconv.FormatFloat(p.Weight, 'f', -1, 64),
			},
		}
	}

	if s.EstimatedTimeArrival != nil {
		eta := FormatTime(*s.EstimatedTimeArrival)
		res.EstimatedTimeArrival = &eta
	}
	return res
}

func NewWeightTotalResponse(w *entities.WeightTotal) WeightTotalResponse {
	return WeightTotalResponse{
		TotalWeight: w.TotalWeight,
		Unit:        w.Unit.String(),
	}
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(etaLayout)
}
