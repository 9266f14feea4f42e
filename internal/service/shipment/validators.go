package shipment

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"shipment-service/internal/entities"
	"shipment-service/pkg/massunit"
)

// ISO-8601 в тех вариантах, что присылают клиенты. Без зоны считаем UTC.
// Дробные секунды time.Parse принимает и без указания в layout.
var etaLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func isValidReferenceID(referenceID *string) bool {
	return referenceID != nil && strings.TrimSpace(*referenceID) != ""
}

func parseEstimatedTimeArrival(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}

	raw := strings.TrimSpace(*value)
	for _, layout := range etaLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidEstimatedTimeArrival, raw)
}

// parseWeight пустая строка это 0, как при числовом приведении пустого значения.
func parseWeight(value string) (float64, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return 0, nil
	}

	weight, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, value)
	}
	return weight, nil
}

func parseUnit(value string) (entities.WeightUnit, error) {
	if !massunit.IsSupported(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, value)
	}
	return entities.WeightUnit(value), nil
}

func normalizeTransportPacks(inputs []entities.TransportPackInput) ([]entities.TransportPackModify, error) {
	packs := make([]entities.TransportPackModify, 0, len(inputs))
	for i, input := range inputs {
		weight, err := parseWeight(input.Weight)
		if err != nil {
			return nil, fmt.Errorf("transport pack %d: %w", i, err)
		}

		unit, err := parseUnit(input.Unit)
		if err != nil {
			return nil, fmt.Errorf("transport pack %d: %w", i, err)
		}

		packs = append(packs, entities.TransportPackModify{
			Weight: weight,
			Unit:   unit,
		})
	}
	return packs, nil
}

// uniqueCodes убирает пустые и повторяющиеся коды, порядок сохраняется.
func uniqueCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	res := make([]string, 0, len(codes))
	for _, code := range codes {
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		res = append(res, code)
	}
	return res
}
