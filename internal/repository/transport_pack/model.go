package transport_pack

import "time"

type TransportPackDB struct {
	ID        string
	Weight    float64
	Unit      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UnitWeightDB struct {
	Unit   string
	Weight float64
}
