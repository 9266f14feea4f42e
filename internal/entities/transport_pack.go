package entities

import "time"

type TransportPack struct {
	ID        string
	Weight    float64
	Unit      WeightUnit
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WeightUnit string

const (
	Ounces    WeightUnit = "OUNCES"
	Pounds    WeightUnit = "POUNDS"
	Kilograms WeightUnit = "KILOGRAMS"
)

func (u WeightUnit) String() string {
	return string(u)
}

// TransportPackInput вес приходит строкой (или числом) и парсится в сервисе.
type TransportPackInput struct {
	Weight string
	Unit   string
}

type TransportPackModify struct {
	Weight float64
	Unit   WeightUnit
}

// UnitWeight сумма весов всех пакетов, записанных в одной единице.
type UnitWeight struct {
	Unit   WeightUnit
	Weight float64
}

type WeightTotal struct {
	TotalWeight string
	Unit        WeightUnit
}
