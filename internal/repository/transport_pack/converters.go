package transport_pack

import "shipment-service/internal/entities"

func ToDomain(p *TransportPackDB) *entities.TransportPack {
	if p == nil {
		return nil
	}

	return &entities.TransportPack{
		ID:        p.ID,
		Weight:    p.Weight,
		Unit:      entities.WeightUnit(p.Unit),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToDomainList(packsDB []TransportPackDB) []entities.TransportPack {
	result := make([]entities.TransportPack, len(packsDB))
	for i := range packsDB {
		result[i] = *ToDomain(&packsDB[i])
	}
	return result
}

func ToDomainUnitWeights(rows []UnitWeightDB) []entities.UnitWeight {
	result := make([]entities.UnitWeight, len(rows))
	for i, row := range rows {
		result[i] = entities.UnitWeight{
			Unit:   entities.WeightUnit(row.Unit),
			Weight: row.Weight,
		}
	}
	return result
}
