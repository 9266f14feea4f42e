// Package massunit конвертирует вес между единицами OUNCES, POUNDS и KILOGRAMS.
//
// Метрические единицы привязаны к грамму, имперские к фунту, системы
// связаны через 1 lb = 453.592 g. Порядок операций (к якорю, между системами,
// от якоря) фиксирован, чтобы результат совпадал до последнего бита.
package massunit

import (
	"errors"
	"fmt"
)

const (
	Ounces    = "OUNCES"
	Pounds    = "POUNDS"
	Kilograms = "KILOGRAMS"
)

var ErrUnrecognizedUnit = errors.New("unrecognized unit")

type system int

const (
	metric system = iota
	imperial
)

const gramsPerPound = 453.592

type unit struct {
	short    string
	system   system
	toAnchor float64
}

var units = map[string]unit{
	Ounces:    {short: "oz", system: imperial, toAnchor: 1.0 / 16},
	Pounds:    {short: "lb", system: imperial, toAnchor: 1},
	Kilograms: {short: "kg", system: metric, toAnchor: 1000},
}

// ratio переводит значение из якоря системы-ключа в якорь другой системы
var ratio = map[system]float64{
	metric:   1 / gramsPerPound,
	imperial: gramsPerPound,
}

// Convert переводит value из единицы from в единицу to.
func Convert(value float64, from, to string) (float64, error) {
	src, ok := units[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedUnit, from)
	}
	dst, ok := units[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedUnit, to)
	}

	result := value * src.toAnchor
	if src.system != dst.system {
		result *= ratio[src.system]
	}
	return result / dst.toAnchor, nil
}

// ShortCode возвращает сокращение единицы: "oz", "lb", "kg".
func ShortCode(code string) (string, error) {
	u, ok := units[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedUnit, code)
	}
	return u.short, nil
}

func IsSupported(code string) bool {
	_, ok := units[code]
	return ok
}

// Supported возвращает допустимые коды в стабильном порядке.
func Supported() []string {
	return []string{Ounces, Pounds, Kilograms}
}
