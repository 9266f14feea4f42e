package entities

import "time"

type Shipment struct {
	ReferenceID          string
	Organizations        []Organization
	EstimatedTimeArrival *time.Time
	TransportPacks       []TransportPack
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ShipmentUpsert входные данные для upsert: организации передаются кодами,
// вес пакетов еще не распарсен.
type ShipmentUpsert struct {
	ReferenceID          *string
	OrganizationCodes    []string
	EstimatedTimeArrival *string
	TransportPacks       []TransportPackInput
}

// ShipmentModify нормализованная отправка, готовая к записи в хранилище.
type ShipmentModify struct {
	ReferenceID          string
	OrganizationIDs      []string
	EstimatedTimeArrival *time.Time
	TransportPacks       []TransportPackModify
}
