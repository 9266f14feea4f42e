package dto

const (
	TypeOrganization = "ORGANIZATION"
	TypeShipment     = "SHIPMENT"
)

// Event конверт сообщения из топика: тип и тело как у POST эндпоинтов.
type Event struct {
	Type string `json:"type"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type OrganizationRequest struct {
	ID   *string `json:"id"`
	Code *string `json:"code"`
}

type OrganizationResponse struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Code string `json:"code"`
}

type ShipmentRequest struct {
	ReferenceID          *string                `json:"referenceId"`
	Organizations        []string               `json:"organizations"`
	EstimatedTimeArrival *string                `json:"estimatedTimeArrival"`
	TransportPacks       *TransportPacksRequest `json:"transportPacks"`
}

type TransportPacksRequest struct {
	Nodes []TransportPackNode `json:"nodes"`
}

type TransportPackNode struct {
	TotalWeight TotalWeightRequest `json:"totalWeight"`
}

type TotalWeightRequest struct {
	Weight Weight `json:"weight"`
	Unit   string `json:"unit"`
}

type ShipmentResponse struct {
	Type                 string                 `json:"type"`
	ReferenceID          string                 `json:"referenceId"`
	Organizations        []OrganizationResponse `json:"organizations"`
	EstimatedTimeArrival *string                `json:"estimatedTimeArrival,omitempty"`
	TransportPacks       TransportPacksResponse `json:"transportPacks"`
}

type TransportPacksResponse struct {
	Node []TransportPackResponse `json:"node"`
}

type TransportPackResponse struct {
	TotalWeight TotalWeightResponse `json:"totalWeight"`
}

type TotalWeightResponse struct {
	Unit   string `json:"unit"`
	Weight string `json:"weight"`
}

type WeightTotalResponse struct {
	TotalWeight string `json:"totalWeight"`
	Unit        string `json:"unit"`
}
