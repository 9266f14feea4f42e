package shipment

import (
	"context"
	"fmt"
	"strconv"

	"shipment-service/internal/entities"
	"shipment-service/pkg/massunit"
)

const totalWeightPrecision = 4

type Shipment struct {
	repository              Repository
	organizationRepository  OrganizationRepository
	transportPackRepository TransportPackRepository
	txManager               TxManager
}

func New(
	repository Repository,
	organizationRepository OrganizationRepository,
	transportPackRepository TransportPackRepository,
	txManager TxManager,
) *Shipment {
	return &Shipment{
		repository:              repository,
		organizationRepository:  organizationRepository,
		transportPackRepository: transportPackRepository,
		txManager:               txManager,
	}
}

// UpsertShipment создает или полностью перезаписывает отправку по referenceId.
// Организации ищутся по кодам, ненайденные коды пропускаются. Упаковки
// заменяются целиком.
func (s *Shipment) UpsertShipment(ctx context.Context, shipmentUpsert entities.ShipmentUpsert) (*entities.Shipment, error) {
	shipmentModify, err := normalize(shipmentUpsert)
	if err != nil {
		return nil, err
	}

	var result *entities.Shipment
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		organizations, err := s.findOrganizations(ctx, shipmentUpsert.OrganizationCodes)
		if err != nil {
			return err
		}

		shipmentModify.OrganizationIDs = make([]string, len(organizations))
		for i, o := range organizations {
			shipmentModify.OrganizationIDs[i] = o.ID
		}

		shipment, err := s.repository.Upsert(ctx, *shipmentModify)
		if err != nil {
			return fmt.Errorf("upsert shipment: %w", err)
		}

		err = s.repository.ReplaceOrganizations(ctx, shipment.ReferenceID, shipmentModify.OrganizationIDs)
		if err != nil {
			return fmt.Errorf("replace shipment organizations: %w", err)
		}

		packs, err := s.transportPackRepository.ReplaceForShipment(ctx, shipment.ReferenceID, shipmentModify.TransportPacks)
		if err != nil {
			return fmt.Errorf("replace transport packs: %w", err)
		}

		shipment.Organizations = organizations
		shipment.TransportPacks = packs
		result = shipment
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Shipment) findOrganizations(ctx context.Context, codes []string) ([]entities.Organization, error) {
	codes = uniqueCodes(codes)
	if len(codes) == 0 {
		return []entities.Organization{}, nil
	}

	organizations, err := s.organizationRepository.GetByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("get organizations by codes: %w", err)
	}
	return organizations, nil
}

// GetShipment отправка со всеми организациями и упаковками, прочитанная
// одним снимком.
func (s *Shipment) GetShipment(ctx context.Context, referenceID string) (*entities.Shipment, error) {
	var result *entities.Shipment
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByReferenceID(ctx, referenceID)
		if err != nil {
			return fmt.Errorf("failed to get shipment: %w", err)
		}

		organizations, err := s.organizationRepository.GetByShipment(ctx, referenceID)
		if err != nil {
			return fmt.Errorf("failed to get shipment organizations: %w", err)
		}

		packs, err := s.transportPackRepository.GetByShipment(ctx, referenceID)
		if err != nil {
			return fmt.Errorf("failed to get shipment transport packs: %w", err)
		}

		shipment.Organizations = organizations
		shipment.TransportPacks = packs
		result = shipment
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// AggregateWeight суммарный вес всех упаковок в единице unit с 4 знаками
// после точки. Сначала суммируется внутри каждой единицы хранения, затем
// каждая сумма переводится в unit. Конвертация вызывается только для
// чужих единиц, поэтому на пустой базе любой unit дает "0.0000".
func (s *Shipment) AggregateWeight(ctx context.Context, unit string) (*entities.WeightTotal, error) {
	if unit == "" {
		return nil, ErrMissingUnit
	}

	sums, err := s.transportPackRepository.SumWeightByUnit(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum weight by unit: %w", err)
	}

	var total float64
	for _, sum := range sums {
		if sum.Unit.String() == unit {
			total += sum.Weight
			continue
		}

		converted, err := massunit.Convert(sum.Weight, sum.Unit.String(), unit)
		if err != nil {
			return nil, fmt.Errorf("convert %s to %s: %w", sum.Unit, unit, err)
		}
		total += converted
	}

	return &entities.WeightTotal{
		TotalWeight: strconv.FormatFloat(total, 'f', totalWeightPrecision, 64),
		Unit:        entities.WeightUnit(unit),
	}, nil
}

// WeightTotals суммы по единицам хранения без конвертации, для метрик.
func (s *Shipment) WeightTotals(ctx context.Context) ([]entities.UnitWeight, error) {
	sums, err := s.transportPackRepository.SumWeightByUnit(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum weight by unit: %w", err)
	}
	return sums, nil
}

func normalize(shipmentUpsert entities.ShipmentUpsert) (*entities.ShipmentModify, error) {
	if !isValidReferenceID(shipmentUpsert.ReferenceID) {
		return nil, ErrMissingReferenceID
	}

	eta, err := parseEstimatedTimeArrival(shipmentUpsert.EstimatedTimeArrival)
	if err != nil {
		return nil, err
	}

	packs, err := normalizeTransportPacks(shipmentUpsert.TransportPacks)
	if err != nil {
		return nil, err
	}

	return &entities.ShipmentModify{
		ReferenceID:          *shipmentUpsert.ReferenceID,
		EstimatedTimeArrival: eta,
		TransportPacks:       packs,
	}, nil
}
