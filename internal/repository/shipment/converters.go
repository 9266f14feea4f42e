package shipment

import "shipment-service/internal/entities"

// ToDomain только сама отправка, организации и упаковки подгружает сервис.
func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	var eta = s.EstimatedTimeArrival
	if eta != nil {
		utc := eta.UTC()
		eta = &utc
	}

	return &entities.Shipment{
		ReferenceID:          s.ReferenceID,
		Organizations:        []entities.Organization{},
		EstimatedTimeArrival: eta,
		TransportPacks:       []entities.TransportPack{},
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
