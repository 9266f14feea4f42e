package organization

import "time"

type OrganizationDB struct {
	ID        string
	Code      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
