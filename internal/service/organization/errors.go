package organization

import "errors"

var (
	ErrMissingID   = errors.New("missing organization id")
	ErrMissingCode = errors.New("missing organization code")

	ErrOrganizationNotFound = errors.New("organization not found")
)
