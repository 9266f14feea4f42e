package entities

import "time"

type Organization struct {
	ID        string
	Code      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrganizationModify struct {
	ID   *string
	Code *string
}
